package repository

import (
	"context"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/model"

	"gorm.io/gorm"
)

type PurchaseOrderRepository interface {
	FindAll(ctx context.Context) ([]model.PurchaseOrderView, error)
	FindByID(ctx context.Context, id int64) (*model.PurchaseOrder, error)
	FindView(ctx context.Context, id int64) (*model.PurchaseOrderView, error)
	Create(ctx context.Context, order *model.PurchaseOrder) error
	UpdateColumns(ctx context.Context, id int64, columns map[string]interface{}) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type purchaseOrderRepo struct {
	table[model.PurchaseOrder]
	views view[model.PurchaseOrderView]
}

func NewPurchaseOrderRepo(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{
		table: table[model.PurchaseOrder]{db: db, name: model.TablePurchaseOrder, pk: "purchase_order_id"},
		views: view[model.PurchaseOrderView]{db: db, name: model.TablePurchaseOrder, pk: "po.purchase_order_id", joins: purchaseOrderJoins},
	}
}

func purchaseOrderJoins(db *gorm.DB) *gorm.DB {
	return db.Table(model.TablePurchaseOrder + " AS po").
		Select("po.*, s.supplier_name AS supplier_name, p.product_name AS product_name, u.username AS ordered_by").
		Joins("LEFT JOIN " + model.TableSupplier + " AS s ON s.supplier_id = po.supplier_id").
		Joins("LEFT JOIN " + model.TableProduct + " AS p ON p.product_id = po.product_id").
		Joins("LEFT JOIN " + model.TableUser + " AS u ON u.user_id = po.user_id")
}

func (r *purchaseOrderRepo) FindAll(ctx context.Context) ([]model.PurchaseOrderView, error) {
	return r.views.FindAll(ctx)
}

func (r *purchaseOrderRepo) FindView(ctx context.Context, id int64) (*model.PurchaseOrderView, error) {
	return r.views.FindByID(ctx, id)
}

type ReceiveProductRepository interface {
	FindAll(ctx context.Context) ([]model.ReceiveProductView, error)
	FindByID(ctx context.Context, id int64) (*model.ReceiveProduct, error)
	FindView(ctx context.Context, id int64) (*model.ReceiveProductView, error)
	Create(ctx context.Context, receipt *model.ReceiveProduct) error
	UpdateColumns(ctx context.Context, id int64, columns map[string]interface{}) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type receiveProductRepo struct {
	table[model.ReceiveProduct]
	views view[model.ReceiveProductView]
}

func NewReceiveProductRepo(db *gorm.DB) ReceiveProductRepository {
	return &receiveProductRepo{
		table: table[model.ReceiveProduct]{db: db, name: model.TableReceiveProduct, pk: "receive_product_id"},
		views: view[model.ReceiveProductView]{db: db, name: model.TableReceiveProduct, pk: "rp.receive_product_id", joins: receiveProductJoins},
	}
}

func receiveProductJoins(db *gorm.DB) *gorm.DB {
	return db.Table(model.TableReceiveProduct + " AS rp").
		Select("rp.*, s.supplier_name AS supplier_name, p.product_name AS product_name, u.username AS received_by").
		Joins("LEFT JOIN " + model.TableSupplier + " AS s ON s.supplier_id = rp.supplier_id").
		Joins("LEFT JOIN " + model.TableProduct + " AS p ON p.product_id = rp.product_id").
		Joins("LEFT JOIN " + model.TableUser + " AS u ON u.user_id = rp.user_id")
}

func (r *receiveProductRepo) FindAll(ctx context.Context) ([]model.ReceiveProductView, error) {
	return r.views.FindAll(ctx)
}

func (r *receiveProductRepo) FindView(ctx context.Context, id int64) (*model.ReceiveProductView, error) {
	return r.views.FindByID(ctx, id)
}
