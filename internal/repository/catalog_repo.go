package repository

import (
	"context"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/model"

	"gorm.io/gorm"
)

type UnitRepository interface {
	FindAll(ctx context.Context) ([]model.ProductUnit, error)
	FindByID(ctx context.Context, id int64) (*model.ProductUnit, error)
	Create(ctx context.Context, unit *model.ProductUnit) error
	Replace(ctx context.Context, unit *model.ProductUnit) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type unitRepo struct {
	table[model.ProductUnit]
}

func NewUnitRepo(db *gorm.DB) UnitRepository {
	return &unitRepo{table[model.ProductUnit]{db: db, name: model.TableProductUnit, pk: "unit_id"}}
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]model.ProductCategory, error)
	FindByID(ctx context.Context, id int64) (*model.ProductCategory, error)
	Create(ctx context.Context, category *model.ProductCategory) error
	Replace(ctx context.Context, category *model.ProductCategory) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type categoryRepo struct {
	table[model.ProductCategory]
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{table[model.ProductCategory]{db: db, name: model.TableProductCategory, pk: "category_id"}}
}
