package repository

import (
	"context"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	FindAll(ctx context.Context) ([]model.Supplier, error)
	FindByID(ctx context.Context, id int64) (*model.Supplier, error)
	Create(ctx context.Context, supplier *model.Supplier) error
	UpdateColumns(ctx context.Context, id int64, columns map[string]interface{}) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type supplierRepo struct {
	table[model.Supplier]
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{table[model.Supplier]{db: db, name: model.TableSupplier, pk: "supplier_id"}}
}

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	Create(ctx context.Context, customer *model.Customer) error
	Replace(ctx context.Context, customer *model.Customer) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type customerRepo struct {
	table[model.Customer]
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{table[model.Customer]{db: db, name: model.TableCustomer, pk: "customer_id"}}
}
