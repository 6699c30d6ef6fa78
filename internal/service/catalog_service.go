package service

import (
	"context"

	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/model"
	"github.com/muhammadmukaram23/pos-system-using-SQLRAW/internal/repository"
)

type ProductUnitRequest struct {
	UnitName string `json:"unit_name" validate:"required,max=100"`
}

type ProductUnitService = Accessor[model.ProductUnit, ProductUnitRequest, ProductUnitRequest]

type productUnitService struct {
	resource
}

func NewProductUnitService(deps Deps) ProductUnitService {
	return &productUnitService{newResource(deps, "product_unit", "Product unit")}
}

func (s *productUnitService) List(ctx context.Context) ([]model.ProductUnit, error) {
	return list(ctx, s.resource, func(r *repository.Repositories) ([]model.ProductUnit, error) {
		return r.Units.FindAll(ctx)
	})
}

func (s *productUnitService) Get(ctx context.Context, id int64) (*model.ProductUnit, error) {
	return get(ctx, s.resource, id, func(r *repository.Repositories) (*model.ProductUnit, error) {
		return r.Units.FindByID(ctx, id)
	})
}

func (s *productUnitService) Create(ctx context.Context, req *ProductUnitRequest) (*model.ProductUnit, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	return mutate(ctx, s.resource, ActionCreated, func(r *repository.Repositories) (*model.ProductUnit, error) {
		if err := Check(ctx, r.Lookup, Unique("unit_name", model.TableProductUnit, "unit_name", req.UnitName)); err != nil {
			return nil, err
		}
		unit := &model.ProductUnit{UnitName: req.UnitName}
		if err := r.Units.Create(ctx, unit); err != nil {
			return nil, classifyWrite(err, "unit_name", req.UnitName)
		}
		return reread(r.Units.FindByID(ctx, unit.UnitID))
	})
}

func (s *productUnitService) Update(ctx context.Context, id int64, req *ProductUnitRequest) (*model.ProductUnit, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	return mutate(ctx, s.resource, ActionUpdated, func(r *repository.Repositories) (*model.ProductUnit, error) {
		existing, err := r.Units.FindByID(ctx, id)
		if err != nil {
			return nil, s.found(err, id)
		}
		if req.UnitName != existing.UnitName {
			if err := Check(ctx, r.Lookup, Unique("unit_name", model.TableProductUnit, "unit_name", req.UnitName)); err != nil {
				return nil, err
			}
		}
		unit := &model.ProductUnit{UnitID: id, UnitName: req.UnitName}
		if err := r.Units.Replace(ctx, unit); err != nil {
			return nil, classifyWrite(err, "unit_name", req.UnitName)
		}
		return reread(r.Units.FindByID(ctx, id))
	})
}

func (s *productUnitService) Delete(ctx context.Context, id int64) error {
	return remove(ctx, s.resource, id, func(r *repository.Repositories) (bool, error) {
		return r.Units.Delete(ctx, id)
	})
}

type ProductCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required,max=100"`
}

type ProductCategoryService = Accessor[model.ProductCategory, ProductCategoryRequest, ProductCategoryRequest]

type productCategoryService struct {
	resource
}

func NewProductCategoryService(deps Deps) ProductCategoryService {
	return &productCategoryService{newResource(deps, "product_category", "Product category")}
}

func (s *productCategoryService) List(ctx context.Context) ([]model.ProductCategory, error) {
	return list(ctx, s.resource, func(r *repository.Repositories) ([]model.ProductCategory, error) {
		return r.Categories.FindAll(ctx)
	})
}

func (s *productCategoryService) Get(ctx context.Context, id int64) (*model.ProductCategory, error) {
	return get(ctx, s.resource, id, func(r *repository.Repositories) (*model.ProductCategory, error) {
		return r.Categories.FindByID(ctx, id)
	})
}

func (s *productCategoryService) Create(ctx context.Context, req *ProductCategoryRequest) (*model.ProductCategory, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	return mutate(ctx, s.resource, ActionCreated, func(r *repository.Repositories) (*model.ProductCategory, error) {
		if err := Check(ctx, r.Lookup, Unique("category_name", model.TableProductCategory, "category_name", req.CategoryName)); err != nil {
			return nil, err
		}
		category := &model.ProductCategory{CategoryName: req.CategoryName}
		if err := r.Categories.Create(ctx, category); err != nil {
			return nil, classifyWrite(err, "category_name", req.CategoryName)
		}
		return reread(r.Categories.FindByID(ctx, category.CategoryID))
	})
}

func (s *productCategoryService) Update(ctx context.Context, id int64, req *ProductCategoryRequest) (*model.ProductCategory, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	return mutate(ctx, s.resource, ActionUpdated, func(r *repository.Repositories) (*model.ProductCategory, error) {
		existing, err := r.Categories.FindByID(ctx, id)
		if err != nil {
			return nil, s.found(err, id)
		}
		if req.CategoryName != existing.CategoryName {
			if err := Check(ctx, r.Lookup, Unique("category_name", model.TableProductCategory, "category_name", req.CategoryName)); err != nil {
				return nil, err
			}
		}
		category := &model.ProductCategory{CategoryID: id, CategoryName: req.CategoryName}
		if err := r.Categories.Replace(ctx, category); err != nil {
			return nil, classifyWrite(err, "category_name", req.CategoryName)
		}
		return reread(r.Categories.FindByID(ctx, id))
	})
}

func (s *productCategoryService) Delete(ctx context.Context, id int64) error {
	return remove(ctx, s.resource, id, func(r *repository.Repositories) (bool, error) {
		return r.Categories.Delete(ctx, id)
	})
}
