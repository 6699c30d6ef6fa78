package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories is the set of table accessors bound to one connection.
type Repositories struct {
	Lookup         Lookup
	Units          UnitRepository
	Categories     CategoryRepository
	Users          UserRepository
	Suppliers      SupplierRepository
	Customers      CustomerRepository
	Products       ProductRepository
	Invoices       InvoiceRepository
	Sales          SaleRepository
	PurchaseOrders PurchaseOrderRepository
	Receipts       ReceiveProductRepository
}

func newRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Lookup:         NewLookup(db),
		Units:          NewUnitRepo(db),
		Categories:     NewCategoryRepo(db),
		Users:          NewUserRepo(db),
		Suppliers:      NewSupplierRepo(db),
		Customers:      NewCustomerRepo(db),
		Products:       NewProductRepo(db),
		Invoices:       NewInvoiceRepo(db),
		Sales:          NewSaleRepo(db),
		PurchaseOrders: NewPurchaseOrderRepo(db),
		Receipts:       NewReceiveProductRepo(db),
	}
}

// Store hands out repositories scoped to a single pooled connection.
type Store interface {
	// Session pins one connection for the duration of fn and returns it to
	// the pool when fn returns, whatever the outcome.
	Session(ctx context.Context, fn func(r *Repositories) error) error
	Ping(ctx context.Context) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db}
}

func (s *gormStore) Session(ctx context.Context, fn func(r *Repositories) error) error {
	return s.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return fn(newRepositories(conn.Session(&gorm.Session{NewDB: true})))
	})
}

func (s *gormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
