package service

import (
	"context"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/model"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/repository"
)

type CreatePurchaseOrderRequest struct {
	ProductID  int64      `json:"product_id" validate:"required"`
	SupplierID int64      `json:"supplier_id" validate:"required"`
	Quantity   *float64   `json:"quantity" validate:"required"`
	UnitPrice  *float64   `json:"unit_price" validate:"required"`
	SubTotal   *float64   `json:"sub_total" validate:"required"`
	OrderDate  model.Date `json:"order_date" validate:"date_required"`
	UserID     int64      `json:"user_id" validate:"required"`
	Status     *string    `json:"status" validate:"omitempty,min=1,max=30"`
}

func (req *CreatePurchaseOrderRequest) references() []Rule {
	return []Rule{
		Reference("product_id", model.TableProduct, "product_id", req.ProductID),
		Reference("supplier_id", model.TableSupplier, "supplier_id", req.SupplierID),
		Reference("user_id", model.TableUser, "user_id", req.UserID),
	}
}

type UpdatePurchaseOrderRequest struct {
	ProductID  *int64      `json:"product_id" validate:"omitempty,gt=0"`
	SupplierID *int64      `json:"supplier_id" validate:"omitempty,gt=0"`
	Quantity   *float64    `json:"quantity"`
	UnitPrice  *float64    `json:"unit_price"`
	SubTotal   *float64    `json:"sub_total"`
	OrderDate  *model.Date `json:"order_date"`
	UserID     *int64      `json:"user_id" validate:"omitempty,gt=0"`
	Status     *string     `json:"status" validate:"omitempty,min=1,max=30"`
}

func (req *UpdatePurchaseOrderRequest) columns() map[string]interface{} {
	columns := map[string]interface{}{}
	if req.ProductID != nil {
		columns["product_id"] = *req.ProductID
	}
	if req.SupplierID != nil {
		columns["supplier_id"] = *req.SupplierID
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
	if req.OrderDate != nil && !req.OrderDate.IsZero() {
		columns["order_date"] = *req.OrderDate
	}
	if req.UserID != nil {
		columns["user_id"] = *req.UserID
	}
	if req.Status != nil {
		columns["status"] = *req.Status
	}
	return columns
}

func (req *UpdatePurchaseOrderRequest) references() []Rule {
	var rules []Rule
	if req.ProductID != nil {
		rules = append(rules, Reference("product_id", model.TableProduct, "product_id", *req.ProductID))
	}
	if req.SupplierID != nil {
		rules = append(rules, Reference("supplier_id", model.TableSupplier, "supplier_id", *req.SupplierID))
	}
	if req.UserID != nil {
		rules = append(rules, Reference("user_id", model.TableUser, "user_id", *req.UserID))
	}
	return rules
}

type PurchaseOrderService = Accessor[model.PurchaseOrderView, CreatePurchaseOrderRequest, UpdatePurchaseOrderRequest]

type purchaseOrderService struct {
	resource
}

func NewPurchaseOrderService(deps Deps) PurchaseOrderService {
	return &purchaseOrderService{newResource(deps, "purchase_order", "Purchase order")}
}

func (s *purchaseOrderService) List(ctx context.Context) ([]model.PurchaseOrderView, error) {
	return list(ctx, s.resource, func(r *repository.Repositories) ([]model.PurchaseOrderView, error) {
		return r.PurchaseOrders.FindAll(ctx)
	})
}

func (s *purchaseOrderService) Get(ctx context.Context, id int64) (*model.PurchaseOrderView, error) {
	return get(ctx, s.resource, id, func(r *repository.Repositories) (*model.PurchaseOrderView, error) {
		return r.PurchaseOrders.FindView(ctx, id)
	})
}

func (s *purchaseOrderService) Create(ctx context.Context, req *CreatePurchaseOrderRequest) (*model.PurchaseOrderView, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	return mutate(ctx, s.resource, ActionCreated, func(r *repository.Repositories) (*model.PurchaseOrderView, error) {
		if err := Check(ctx, r.Lookup, req.references()...); err != nil {
			return nil, err
		}
		order := &model.PurchaseOrder{
			ProductID:  req.ProductID,
			SupplierID: req.SupplierID,
			Quantity:   *req.Quantity,
			UnitPrice:  *req.UnitPrice,
			SubTotal:   *req.SubTotal,
			OrderDate:  req.OrderDate,
			UserID:     req.UserID,
			Status:     model.PurchaseOrderPending,
		}
		if req.Status != nil {
			order.Status = *req.Status
		}
		if err := r.PurchaseOrders.Create(ctx, order); err != nil {
			return nil, storeFault(err)
		}
		return reread(r.PurchaseOrders.FindView(ctx, order.PurchaseOrderID))
	})
}

func (s *purchaseOrderService) Update(ctx context.Context, id int64, req *UpdatePurchaseOrderRequest) (*model.PurchaseOrderView, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	columns := req.columns()
	if len(columns) == 0 {
		return nil, s.fail(ErrNoFieldsToUpdate)
	}
	return mutate(ctx, s.resource, ActionUpdated, func(r *repository.Repositories) (*model.PurchaseOrderView, error) {
		if _, err := r.PurchaseOrders.FindByID(ctx, id); err != nil {
			return nil, s.found(err, id)
		}
		if err := Check(ctx, r.Lookup, req.references()...); err != nil {
			return nil, err
		}
		if err := r.PurchaseOrders.UpdateColumns(ctx, id, columns); err != nil {
			return nil, storeFault(err)
		}
		return reread(r.PurchaseOrders.FindView(ctx, id))
	})
}

func (s *purchaseOrderService) Delete(ctx context.Context, id int64) error {
	return remove(ctx, s.resource, id, func(r *repository.Repositories) (bool, error) {
		return r.PurchaseOrders.Delete(ctx, id)
	})
}

type CreateReceiveProductRequest struct {
	ProductID       int64      `json:"product_id" validate:"required"`
	SupplierID      int64      `json:"supplier_id" validate:"required"`
	Quantity        *float64   `json:"quantity" validate:"required"`
	UnitPrice       *float64   `json:"unit_price" validate:"required"`
	SubTotal        *float64   `json:"sub_total" validate:"required"`
	ReceivedDate    model.Date `json:"received_date" validate:"date_required"`
	UserID          int64      `json:"user_id" validate:"required"`
	PurchaseOrderID *int64     `json:"purchase_order_id" validate:"omitempty,gt=0"`
}

func (req *CreateReceiveProductRequest) references() []Rule {
	rules := []Rule{
		Reference("product_id", model.TableProduct, "product_id", req.ProductID),
		Reference("supplier_id", model.TableSupplier, "supplier_id", req.SupplierID),
		Reference("user_id", model.TableUser, "user_id", req.UserID),
	}
	if req.PurchaseOrderID != nil {
		rules = append(rules, Reference("purchase_order_id", model.TablePurchaseOrder, "purchase_order_id", *req.PurchaseOrderID))
	}
	return rules
}

type UpdateReceiveProductRequest struct {
	ProductID       *int64      `json:"product_id" validate:"omitempty,gt=0"`
	SupplierID      *int64      `json:"supplier_id" validate:"omitempty,gt=0"`
	Quantity        *float64    `json:"quantity"`
	UnitPrice       *float64    `json:"unit_price"`
	SubTotal        *float64    `json:"sub_total"`
	ReceivedDate    *model.Date `json:"received_date"`
	UserID          *int64      `json:"user_id" validate:"omitempty,gt=0"`
	PurchaseOrderID *int64      `json:"purchase_order_id" validate:"omitempty,gt=0"`
}

func (req *UpdateReceiveProductRequest) columns() map[string]interface{} {
	columns := map[string]interface{}{}
	if req.ProductID != nil {
		columns["product_id"] = *req.ProductID
	}
	if req.SupplierID != nil {
		columns["supplier_id"] = *req.SupplierID
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
	if req.ReceivedDate != nil && !req.ReceivedDate.IsZero() {
		columns["received_date"] = *req.ReceivedDate
	}
	if req.UserID != nil {
		columns["user_id"] = *req.UserID
	}
	if req.PurchaseOrderID != nil {
		columns["purchase_order_id"] = *req.PurchaseOrderID
	}
	return columns
}

func (req *UpdateReceiveProductRequest) references() []Rule {
	var rules []Rule
	if req.ProductID != nil {
		rules = append(rules, Reference("product_id", model.TableProduct, "product_id", *req.ProductID))
	}
	if req.SupplierID != nil {
		rules = append(rules, Reference("supplier_id", model.TableSupplier, "supplier_id", *req.SupplierID))
	}
	if req.UserID != nil {
		rules = append(rules, Reference("user_id", model.TableUser, "user_id", *req.UserID))
	}
	if req.PurchaseOrderID != nil {
		rules = append(rules, Reference("purchase_order_id", model.TablePurchaseOrder, "purchase_order_id", *req.PurchaseOrderID))
	}
	return rules
}

type ReceiveProductService = Accessor[model.ReceiveProductView, CreateReceiveProductRequest, UpdateReceiveProductRequest]

type receiveProductService struct {
	resource
}

func NewReceiveProductService(deps Deps) ReceiveProductService {
	return &receiveProductService{newResource(deps, "receive_product", "Receive product")}
}

func (s *receiveProductService) List(ctx context.Context) ([]model.ReceiveProductView, error) {
	return list(ctx, s.resource, func(r *repository.Repositories) ([]model.ReceiveProductView, error) {
		return r.Receipts.FindAll(ctx)
	})
}

func (s *receiveProductService) Get(ctx context.Context, id int64) (*model.ReceiveProductView, error) {
	return get(ctx, s.resource, id, func(r *repository.Repositories) (*model.ReceiveProductView, error) {
		return r.Receipts.FindView(ctx, id)
	})
}

func (s *receiveProductService) Create(ctx context.Context, req *CreateReceiveProductRequest) (*model.ReceiveProductView, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	return mutate(ctx, s.resource, ActionCreated, func(r *repository.Repositories) (*model.ReceiveProductView, error) {
		if err := Check(ctx, r.Lookup, req.references()...); err != nil {
			return nil, err
		}
		receipt := &model.ReceiveProduct{
			ProductID:       req.ProductID,
			SupplierID:      req.SupplierID,
			Quantity:        *req.Quantity,
			UnitPrice:       *req.UnitPrice,
			SubTotal:        *req.SubTotal,
			ReceivedDate:    req.ReceivedDate,
			UserID:          req.UserID,
			PurchaseOrderID: req.PurchaseOrderID,
		}
		if err := r.Receipts.Create(ctx, receipt); err != nil {
			return nil, storeFault(err)
		}
		return reread(r.Receipts.FindView(ctx, receipt.ReceiveProductID))
	})
}

func (s *receiveProductService) Update(ctx context.Context, id int64, req *UpdateReceiveProductRequest) (*model.ReceiveProductView, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	columns := req.columns()
	if len(columns) == 0 {
		return nil, s.fail(ErrNoFieldsToUpdate)
	}
	return mutate(ctx, s.resource, ActionUpdated, func(r *repository.Repositories) (*model.ReceiveProductView, error) {
		if _, err := r.Receipts.FindByID(ctx, id); err != nil {
			return nil, s.found(err, id)
		}
		if err := Check(ctx, r.Lookup, req.references()...); err != nil {
			return nil, err
		}
		if err := r.Receipts.UpdateColumns(ctx, id, columns); err != nil {
			return nil, storeFault(err)
		}
		return reread(r.Receipts.FindView(ctx, id))
	})
}

func (s *receiveProductService) Delete(ctx context.Context, id int64) error {
	return remove(ctx, s.resource, id, func(r *repository.Repositories) (bool, error) {
		return r.Receipts.Delete(ctx, id)
	})
}
