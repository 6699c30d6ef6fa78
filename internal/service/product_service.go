package service

import (
	"context"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/model"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/repository"
)

// ProductRequest is both the create and the replace payload.
type ProductRequest struct {
	ProduceCode        string   `json:"produce_code" validate:"required,max=50"`
	ProductName        string   `json:"product_name" validate:"required,max=255"`
	UnitID             int64    `json:"unit_id" validate:"required"`
	CategoryID         int64    `json:"category_id" validate:"required"`
	UnitInStock        *float64 `json:"unit_in_stock" validate:"required"`
	UnitPrice          *float64 `json:"unit_price" validate:"required"`
	DiscountPercentage *float64 `json:"discount_percentage"`
	ReorderLevel       *float64 `json:"reorder_level" validate:"required"`
	UserID             int64    `json:"user_id" validate:"required"`
}

func (req *ProductRequest) references() []Rule {
	return []Rule{
		Reference("unit_id", model.TableProductUnit, "unit_id", req.UnitID),
		Reference("category_id", model.TableProductCategory, "category_id", req.CategoryID),
		Reference("user_id", model.TableUser, "user_id", req.UserID),
	}
}

func (req *ProductRequest) product(id int64) *model.Product {
	product := &model.Product{
		ProductID:    id,
		ProduceCode:  req.ProduceCode,
		ProductName:  req.ProductName,
		UnitID:       req.UnitID,
		CategoryID:   req.CategoryID,
		UnitInStock:  *req.UnitInStock,
		UnitPrice:    *req.UnitPrice,
		ReorderLevel: *req.ReorderLevel,
		UserID:       req.UserID,
	}
	if req.DiscountPercentage != nil {
		product.DiscountPercentage = *req.DiscountPercentage
	}
	return product
}

type ProductService = Accessor[model.ProductView, ProductRequest, ProductRequest]

type productService struct {
	resource
}

func NewProductService(deps Deps) ProductService {
	return &productService{newResource(deps, "product", "Product")}
}

func (s *productService) List(ctx context.Context) ([]model.ProductView, error) {
	return list(ctx, s.resource, func(r *repository.Repositories) ([]model.ProductView, error) {
		return r.Products.FindAll(ctx)
	})
}

func (s *productService) Get(ctx context.Context, id int64) (*model.ProductView, error) {
	return get(ctx, s.resource, id, func(r *repository.Repositories) (*model.ProductView, error) {
		return r.Products.FindView(ctx, id)
	})
}

func (s *productService) Create(ctx context.Context, req *ProductRequest) (*model.ProductView, error) {
	// 1. Validate request
	if err := s.validate(req); err != nil {
		return nil, err
	}

	return mutate(ctx, s.resource, ActionCreated, func(r *repository.Repositories) (*model.ProductView, error) {
		// 2. Unit, category and user must exist, then the code must be free
		rules := append(req.references(), Unique("produce_code", model.TableProduct, "produce_code", req.ProduceCode))
		if err := Check(ctx, r.Lookup, rules...); err != nil {
			return nil, err
		}

		// 3. Insert and re-read with display names
		product := req.product(0)
		if err := r.Products.Create(ctx, product); err != nil {
			return nil, classifyWrite(err, "produce_code", req.ProduceCode)
		}
		return reread(r.Products.FindView(ctx, product.ProductID))
	})
}

func (s *productService) Update(ctx context.Context, id int64, req *ProductRequest) (*model.ProductView, error) {
	// 1. Validate request
	if err := s.validate(req); err != nil {
		return nil, err
	}

	return mutate(ctx, s.resource, ActionUpdated, func(r *repository.Repositories) (*model.ProductView, error) {
		// 2. Find existing product
		existing, err := r.Products.FindByID(ctx, id)
		if err != nil {
			return nil, s.found(err, id)
		}

		// 3. References always, code only when it changes
		rules := req.references()
		if req.ProduceCode != existing.ProduceCode {
			rules = append(rules, Unique("produce_code", model.TableProduct, "produce_code", req.ProduceCode))
		}
		if err := Check(ctx, r.Lookup, rules...); err != nil {
			return nil, err
		}

		// 4. Replace every column
		if err := r.Products.Replace(ctx, req.product(id)); err != nil {
			return nil, classifyWrite(err, "produce_code", req.ProduceCode)
		}
		return reread(r.Products.FindView(ctx, id))
	})
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	return remove(ctx, s.resource, id, func(r *repository.Repositories) (bool, error) {
		return r.Products.Delete(ctx, id)
	})
}
