package services

import (
	"context"

	"github.com/shopstack/products-api/internal/models"
	repo "github.com/shopstack/products-api/internal/repository"
)

type ProductService struct {
	r repo.Products
}

func NewProductService(r repo.Products) *ProductService { return &ProductService{r: r} }

func (s *ProductService) Create(ctx context.Context, in models.ProductInput) (models.Product, error) {
	if err := in.Validate(); err != nil {
		return models.Product{}, err
	}
	return s.r.Insert(ctx, in.Product())
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.r.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (models.Product, error) {
	return s.r.GetByID(ctx, id)
}

// Update merges the provided fields onto the stored document, re-validates
// the whole result, and persists it. Create invariants apply post-merge.
func (s *ProductService) Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	p, err := s.r.GetByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	patch.Apply(&p)
	if err := p.Validate(); err != nil {
		return models.Product{}, err
	}
	return s.r.Update(ctx, p)
}

func (s *ProductService) Delete(ctx context.Context, id string) (models.Product, error) {
	return s.r.Delete(ctx, id)
}
