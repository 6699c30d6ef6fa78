package repository

import (
	"context"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.ProductView, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindView(ctx context.Context, id int64) (*model.ProductView, error)
	Create(ctx context.Context, product *model.Product) error
	Replace(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type productRepo struct {
	table[model.Product]
	views view[model.ProductView]
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{
		table: table[model.Product]{db: db, name: model.TableProduct, pk: "product_id"},
		views: view[model.ProductView]{db: db, name: model.TableProduct, pk: "p.product_id", joins: productJoins},
	}
}

// productJoins surfaces unit, category and creator names. LEFT JOIN keeps
// products whose references were deleted.
func productJoins(db *gorm.DB) *gorm.DB {
	return db.Table(model.TableProduct + " AS p").
		Select("p.*, pu.unit_name AS unit, pc.category_name AS category, u.username AS created_by").
		Joins("LEFT JOIN " + model.TableProductUnit + " AS pu ON pu.unit_id = p.unit_id").
		Joins("LEFT JOIN " + model.TableProductCategory + " AS pc ON pc.category_id = p.category_id").
		Joins("LEFT JOIN " + model.TableUser + " AS u ON u.user_id = p.user_id")
}

func (r *productRepo) FindAll(ctx context.Context) ([]model.ProductView, error) {
	return r.views.FindAll(ctx)
}

func (r *productRepo) FindView(ctx context.Context, id int64) (*model.ProductView, error) {
	return r.views.FindByID(ctx, id)
}
