package repository

import (
	"context"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/model"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	FindAll(ctx context.Context) ([]model.InvoiceView, error)
	FindByID(ctx context.Context, id int64) (*model.Invoice, error)
	FindView(ctx context.Context, id int64) (*model.InvoiceView, error)
	Create(ctx context.Context, invoice *model.Invoice) error
	Replace(ctx context.Context, invoice *model.Invoice) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type invoiceRepo struct {
	table[model.Invoice]
	views view[model.InvoiceView]
}

func NewInvoiceRepo(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{
		table: table[model.Invoice]{db: db, name: model.TableInvoice, pk: "invoice_id"},
		views: view[model.InvoiceView]{db: db, name: model.TableInvoice, pk: "i.invoice_id", joins: invoiceJoins},
	}
}

func invoiceJoins(db *gorm.DB) *gorm.DB {
	return db.Table(model.TableInvoice + " AS i").
		Select("i.*, c.customer_name AS customer_name, u.username AS created_by").
		Joins("LEFT JOIN " + model.TableCustomer + " AS c ON c.customer_id = i.customer_id").
		Joins("LEFT JOIN " + model.TableUser + " AS u ON u.user_id = i.user_id")
}

func (r *invoiceRepo) FindAll(ctx context.Context) ([]model.InvoiceView, error) {
	return r.views.FindAll(ctx)
}

func (r *invoiceRepo) FindView(ctx context.Context, id int64) (*model.InvoiceView, error) {
	return r.views.FindByID(ctx, id)
}

type SaleRepository interface {
	FindAll(ctx context.Context) ([]model.SaleView, error)
	FindByID(ctx context.Context, id int64) (*model.Sale, error)
	FindView(ctx context.Context, id int64) (*model.SaleView, error)
	Create(ctx context.Context, sale *model.Sale) error
	UpdateColumns(ctx context.Context, id int64, columns map[string]interface{}) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type saleRepo struct {
	table[model.Sale]
	views view[model.SaleView]
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{
		table: table[model.Sale]{db: db, name: model.TableSales, pk: "sales_id"},
		views: view[model.SaleView]{db: db, name: model.TableSales, pk: "s.sales_id", joins: saleJoins},
	}
}

// saleJoins carries the parent invoice's customer, payment type and total
// alongside the line item.
func saleJoins(db *gorm.DB) *gorm.DB {
	return db.Table(model.TableSales + " AS s").
		Select("s.*, i.customer_id AS customer_id, i.payment_type AS payment_type, " +
			"i.total_amount AS invoice_total, p.product_name AS product_name").
		Joins("LEFT JOIN " + model.TableInvoice + " AS i ON i.invoice_id = s.invoice_id").
		Joins("LEFT JOIN " + model.TableProduct + " AS p ON p.product_id = s.product_id")
}

func (r *saleRepo) FindAll(ctx context.Context) ([]model.SaleView, error) {
	return r.views.FindAll(ctx)
}

func (r *saleRepo) FindView(ctx context.Context, id int64) (*model.SaleView, error) {
	return r.views.FindByID(ctx, id)
}
