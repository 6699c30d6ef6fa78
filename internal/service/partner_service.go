package service

import (
	"context"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/model"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/repository"
)

type CreateSupplierRequest struct {
	SupplierCode  string  `json:"supplier_code" validate:"required,max=50"`
	SupplierName  string  `json:"supplier_name" validate:"required,max=255"`
	Contact       string  `json:"contact" validate:"max=50"`
	Address       string  `json:"address"`
	Email         *string `json:"email" validate:"omitempty,email"`
	ContactPerson *string `json:"contact_person" validate:"omitempty,max=255"`
	BankName      *string `json:"bank_name" validate:"omitempty,max=255"`
	BankNumber    *string `json:"bank_number" validate:"omitempty,max=100"`
}

type UpdateSupplierRequest struct {
	SupplierCode  *string `json:"supplier_code" validate:"omitempty,min=1,max=50"`
	SupplierName  *string `json:"supplier_name" validate:"omitempty,min=1,max=255"`
	Contact       *string `json:"contact" validate:"omitempty,max=50"`
	Address       *string `json:"address"`
	Email         *string `json:"email" validate:"omitempty,email"`
	ContactPerson *string `json:"contact_person" validate:"omitempty,max=255"`
	BankName      *string `json:"bank_name" validate:"omitempty,max=255"`
	BankNumber    *string `json:"bank_number" validate:"omitempty,max=100"`
}

func (req *UpdateSupplierRequest) columns() map[string]interface{} {
	columns := map[string]interface{}{}
	set := func(column string, value *string) {
		if value != nil {
			columns[column] = *value
		}
	}
	set("supplier_code", req.SupplierCode)
	set("supplier_name", req.SupplierName)
	set("contact", req.Contact)
	set("address", req.Address)
	set("email", req.Email)
	set("contact_person", req.ContactPerson)
	set("bank_name", req.BankName)
	set("bank_number", req.BankNumber)
	return columns
}

type SupplierService = Accessor[model.Supplier, CreateSupplierRequest, UpdateSupplierRequest]

type supplierService struct {
	resource
}

func NewSupplierService(deps Deps) SupplierService {
	return &supplierService{newResource(deps, "supplier", "Supplier")}
}

func (s *supplierService) List(ctx context.Context) ([]model.Supplier, error) {
	return list(ctx, s.resource, func(r *repository.Repositories) ([]model.Supplier, error) {
		return r.Suppliers.FindAll(ctx)
	})
}

func (s *supplierService) Get(ctx context.Context, id int64) (*model.Supplier, error) {
	return get(ctx, s.resource, id, func(r *repository.Repositories) (*model.Supplier, error) {
		return r.Suppliers.FindByID(ctx, id)
	})
}

func (s *supplierService) Create(ctx context.Context, req *CreateSupplierRequest) (*model.Supplier, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	return mutate(ctx, s.resource, ActionCreated, func(r *repository.Repositories) (*model.Supplier, error) {
		if err := Check(ctx, r.Lookup, Unique("supplier_code", model.TableSupplier, "supplier_code", req.SupplierCode)); err != nil {
			return nil, err
		}
		supplier := &model.Supplier{
			SupplierCode:  req.SupplierCode,
			SupplierName:  req.SupplierName,
			Contact:       req.Contact,
			Address:       req.Address,
			Email:         req.Email,
			ContactPerson: req.ContactPerson,
			BankName:      req.BankName,
			BankNumber:    req.BankNumber,
		}
		if err := r.Suppliers.Create(ctx, supplier); err != nil {
			return nil, classifyWrite(err, "supplier_code", req.SupplierCode)
		}
		return reread(r.Suppliers.FindByID(ctx, supplier.SupplierID))
	})
}

func (s *supplierService) Update(ctx context.Context, id int64, req *UpdateSupplierRequest) (*model.Supplier, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	columns := req.columns()
	if len(columns) == 0 {
		return nil, s.fail(ErrNoFieldsToUpdate)
	}
	return mutate(ctx, s.resource, ActionUpdated, func(r *repository.Repositories) (*model.Supplier, error) {
		existing, err := r.Suppliers.FindByID(ctx, id)
		if err != nil {
			return nil, s.found(err, id)
		}
		if req.SupplierCode != nil && *req.SupplierCode != existing.SupplierCode {
			if err := Check(ctx, r.Lookup, Unique("supplier_code", model.TableSupplier, "supplier_code", *req.SupplierCode)); err != nil {
				return nil, err
			}
		}
		if err := r.Suppliers.UpdateColumns(ctx, id, columns); err != nil {
			return nil, classifyWrite(err, "supplier_code", columns["supplier_code"])
		}
		return reread(r.Suppliers.FindByID(ctx, id))
	})
}

func (s *supplierService) Delete(ctx context.Context, id int64) error {
	return remove(ctx, s.resource, id, func(r *repository.Repositories) (bool, error) {
		return r.Suppliers.Delete(ctx, id)
	})
}

type CustomerRequest struct {
	CustomerCode string `json:"customer_code" validate:"required,max=50"`
	CustomerName string `json:"customer_name" validate:"required,max=255"`
	Contact      string `json:"contact" validate:"max=50"`
	Address      string `json:"address"`
}

type CustomerService = Accessor[model.Customer, CustomerRequest, CustomerRequest]

type customerService struct {
	resource
}

func NewCustomerService(deps Deps) CustomerService {
	return &customerService{newResource(deps, "customer", "Customer")}
}

func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	return list(ctx, s.resource, func(r *repository.Repositories) ([]model.Customer, error) {
		return r.Customers.FindAll(ctx)
	})
}

func (s *customerService) Get(ctx context.Context, id int64) (*model.Customer, error) {
	return get(ctx, s.resource, id, func(r *repository.Repositories) (*model.Customer, error) {
		return r.Customers.FindByID(ctx, id)
	})
}

func (s *customerService) Create(ctx context.Context, req *CustomerRequest) (*model.Customer, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	return mutate(ctx, s.resource, ActionCreated, func(r *repository.Repositories) (*model.Customer, error) {
		if err := Check(ctx, r.Lookup, Unique("customer_code", model.TableCustomer, "customer_code", req.CustomerCode)); err != nil {
			return nil, err
		}
		customer := req.customer(0)
		if err := r.Customers.Create(ctx, customer); err != nil {
			return nil, classifyWrite(err, "customer_code", req.CustomerCode)
		}
		return reread(r.Customers.FindByID(ctx, customer.CustomerID))
	})
}

func (s *customerService) Update(ctx context.Context, id int64, req *CustomerRequest) (*model.Customer, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	return mutate(ctx, s.resource, ActionUpdated, func(r *repository.Repositories) (*model.Customer, error) {
		existing, err := r.Customers.FindByID(ctx, id)
		if err != nil {
			return nil, s.found(err, id)
		}
		if req.CustomerCode != existing.CustomerCode {
			if err := Check(ctx, r.Lookup, Unique("customer_code", model.TableCustomer, "customer_code", req.CustomerCode)); err != nil {
				return nil, err
			}
		}
		if err := r.Customers.Replace(ctx, req.customer(id)); err != nil {
			return nil, classifyWrite(err, "customer_code", req.CustomerCode)
		}
		return reread(r.Customers.FindByID(ctx, id))
	})
}

func (s *customerService) Delete(ctx context.Context, id int64) error {
	return remove(ctx, s.resource, id, func(r *repository.Repositories) (bool, error) {
		return r.Customers.Delete(ctx, id)
	})
}

func (req *CustomerRequest) customer(id int64) *model.Customer {
	return &model.Customer{
		CustomerID:   id,
		CustomerCode: req.CustomerCode,
		CustomerName: req.CustomerName,
		Contact:      req.Contact,
		Address:      req.Address,
	}
}
