package service

import (
	"context"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/model"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/repository"
)

// InvoiceRequest is both the create and the replace payload.
type InvoiceRequest struct {
	CustomerID        int64             `json:"customer_id" validate:"required"`
	PaymentType       model.PaymentType `json:"payment_type" validate:"required,enum"`
	TotalAmount       *float64          `json:"total_amount" validate:"required"`
	AmountTendered    *float64          `json:"amount_tendered" validate:"required"`
	BankAccountName   *string           `json:"bank_account_name" validate:"omitempty,max=255"`
	BankAccountNumber *string           `json:"bank_account_number" validate:"omitempty,max=100"`
	DateRecorded      model.Date        `json:"date_recorded" validate:"date_required"`
	UserID            int64             `json:"user_id" validate:"required"`
}

func (req *InvoiceRequest) invoice(id int64) *model.Invoice {
	return &model.Invoice{
		InvoiceID:         id,
		CustomerID:        req.CustomerID,
		PaymentType:       req.PaymentType,
		TotalAmount:       *req.TotalAmount,
		AmountTendered:    *req.AmountTendered,
		BankAccountName:   req.BankAccountName,
		BankAccountNumber: req.BankAccountNumber,
		DateRecorded:      req.DateRecorded,
		UserID:            req.UserID,
	}
}

func (req *InvoiceRequest) references() []Rule {
	return []Rule{
		Reference("customer_id", model.TableCustomer, "customer_id", req.CustomerID),
		Reference("user_id", model.TableUser, "user_id", req.UserID),
	}
}

type InvoiceService = Accessor[model.InvoiceView, InvoiceRequest, InvoiceRequest]

type invoiceService struct {
	resource
}

func NewInvoiceService(deps Deps) InvoiceService {
	return &invoiceService{newResource(deps, "invoice", "Invoice")}
}

func (s *invoiceService) List(ctx context.Context) ([]model.InvoiceView, error) {
	return list(ctx, s.resource, func(r *repository.Repositories) ([]model.InvoiceView, error) {
		return r.Invoices.FindAll(ctx)
	})
}

func (s *invoiceService) Get(ctx context.Context, id int64) (*model.InvoiceView, error) {
	return get(ctx, s.resource, id, func(r *repository.Repositories) (*model.InvoiceView, error) {
		return r.Invoices.FindView(ctx, id)
	})
}

func (s *invoiceService) Create(ctx context.Context, req *InvoiceRequest) (*model.InvoiceView, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	return mutate(ctx, s.resource, ActionCreated, func(r *repository.Repositories) (*model.InvoiceView, error) {
		if err := Check(ctx, r.Lookup, req.references()...); err != nil {
			return nil, err
		}
		invoice := req.invoice(0)
		if err := r.Invoices.Create(ctx, invoice); err != nil {
			return nil, storeFault(err)
		}
		return reread(r.Invoices.FindView(ctx, invoice.InvoiceID))
	})
}

func (s *invoiceService) Update(ctx context.Context, id int64, req *InvoiceRequest) (*model.InvoiceView, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	return mutate(ctx, s.resource, ActionUpdated, func(r *repository.Repositories) (*model.InvoiceView, error) {
		if _, err := r.Invoices.FindByID(ctx, id); err != nil {
			return nil, s.found(err, id)
		}
		if err := Check(ctx, r.Lookup, req.references()...); err != nil {
			return nil, err
		}
		if err := r.Invoices.Replace(ctx, req.invoice(id)); err != nil {
			return nil, storeFault(err)
		}
		return reread(r.Invoices.FindView(ctx, id))
	})
}

func (s *invoiceService) Delete(ctx context.Context, id int64) error {
	return remove(ctx, s.resource, id, func(r *repository.Repositories) (bool, error) {
		return r.Invoices.Delete(ctx, id)
	})
}

type CreateSaleRequest struct {
	InvoiceID int64    `json:"invoice_id" validate:"required"`
	ProductID int64    `json:"product_id" validate:"required"`
	Quantity  *float64 `json:"quantity" validate:"required"`
	UnitPrice *float64 `json:"unit_price" validate:"required"`
	SubTotal  *float64 `json:"sub_total" validate:"required"`
}

// UpdateSaleRequest changes only the fields that are set. sub_total is
// stored as given and never derived from quantity and unit_price.
type UpdateSaleRequest struct {
	InvoiceID *int64   `json:"invoice_id" validate:"omitempty,gt=0"`
	ProductID *int64   `json:"product_id" validate:"omitempty,gt=0"`
	Quantity  *float64 `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
	SubTotal  *float64 `json:"sub_total"`
}

func (req *UpdateSaleRequest) columns() map[string]interface{} {
	columns := map[string]interface{}{}
	if req.InvoiceID != nil {
		columns["invoice_id"] = *req.InvoiceID
	}
	if req.ProductID != nil {
		columns["product_id"] = *req.ProductID
	}
	if req.Quantity != nil {
		columns["quantity"] = *req.Quantity
	}
	if req.UnitPrice != nil {
		columns["unit_price"] = *req.UnitPrice
	}
	if req.SubTotal != nil {
		columns["sub_total"] = *req.SubTotal
	}
	return columns
}

func (req *UpdateSaleRequest) references() []Rule {
	var rules []Rule
	if req.InvoiceID != nil {
		rules = append(rules, Reference("invoice_id", model.TableInvoice, "invoice_id", *req.InvoiceID))
	}
	if req.ProductID != nil {
		rules = append(rules, Reference("product_id", model.TableProduct, "product_id", *req.ProductID))
	}
	return rules
}

type SaleService = Accessor[model.SaleView, CreateSaleRequest, UpdateSaleRequest]

type saleService struct {
	resource
}

func NewSaleService(deps Deps) SaleService {
	return &saleService{newResource(deps, "sales", "Sale")}
}

func (s *saleService) List(ctx context.Context) ([]model.SaleView, error) {
	return list(ctx, s.resource, func(r *repository.Repositories) ([]model.SaleView, error) {
		return r.Sales.FindAll(ctx)
	})
}

func (s *saleService) Get(ctx context.Context, id int64) (*model.SaleView, error) {
	return get(ctx, s.resource, id, func(r *repository.Repositories) (*model.SaleView, error) {
		return r.Sales.FindView(ctx, id)
	})
}

func (s *saleService) Create(ctx context.Context, req *CreateSaleRequest) (*model.SaleView, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	return mutate(ctx, s.resource, ActionCreated, func(r *repository.Repositories) (*model.SaleView, error) {
		err := Check(ctx, r.Lookup,
			Reference("invoice_id", model.TableInvoice, "invoice_id", req.InvoiceID),
			Reference("product_id", model.TableProduct, "product_id", req.ProductID),
		)
		if err != nil {
			return nil, err
		}
		sale := &model.Sale{
			InvoiceID: req.InvoiceID,
			ProductID: req.ProductID,
			Quantity:  *req.Quantity,
			UnitPrice: *req.UnitPrice,
			SubTotal:  *req.SubTotal,
		}
		if err := r.Sales.Create(ctx, sale); err != nil {
			return nil, storeFault(err)
		}
		return reread(r.Sales.FindView(ctx, sale.SalesID))
	})
}

func (s *saleService) Update(ctx context.Context, id int64, req *UpdateSaleRequest) (*model.SaleView, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	columns := req.columns()
	if len(columns) == 0 {
		return nil, s.fail(ErrNoFieldsToUpdate)
	}
	return mutate(ctx, s.resource, ActionUpdated, func(r *repository.Repositories) (*model.SaleView, error) {
		if _, err := r.Sales.FindByID(ctx, id); err != nil {
			return nil, s.found(err, id)
		}
		if err := Check(ctx, r.Lookup, req.references()...); err != nil {
			return nil, err
		}
		if err := r.Sales.UpdateColumns(ctx, id, columns); err != nil {
			return nil, storeFault(err)
		}
		return reread(r.Sales.FindView(ctx, id))
	})
}

func (s *saleService) Delete(ctx context.Context, id int64) error {
	return remove(ctx, s.resource, id, func(r *repository.Repositories) (bool, error) {
		return r.Sales.Delete(ctx, id)
	})
}
