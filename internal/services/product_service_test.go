package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstack/products-api/internal/apperr"
	"github.com/shopstack/products-api/internal/models"
	"github.com/shopstack/products-api/internal/repository/memory"
)

func f(v float64) *float64 { return &v }
func str(v string) *string { return &v }

func TestProductCreateAndGet(t *testing.T) {
	t.Parallel()
	s := NewProductService(memory.NewProducts())

	p, err := s.Create(context.Background(), models.ProductInput{
		Name: "Mug", Price: f(9.99), Category: "kitchen", Description: "ceramic",
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := s.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestProductCreate_Invalid(t *testing.T) {
	t.Parallel()
	s := NewProductService(memory.NewProducts())

	_, err := s.Create(context.Background(), models.ProductInput{Name: "Mug", Price: f(-5)})
	require.Error(t, err)

	_, err = s.Create(context.Background(), models.ProductInput{Price: f(1)})
	require.Error(t, err)
}

func TestProductUpdate_MergesAndRevalidates(t *testing.T) {
	t.Parallel()
	s := NewProductService(memory.NewProducts())

	p, err := s.Create(context.Background(), models.ProductInput{
		Name: "Mug", Price: f(9.99), Category: "kitchen",
	})
	require.NoError(t, err)

	// patch one field, the rest stays
	up, err := s.Update(context.Background(), p.ID, models.ProductPatch{Price: f(12.50)})
	require.NoError(t, err)
	assert.Equal(t, 12.50, up.Price)
	assert.Equal(t, "Mug", up.Name)
	assert.Equal(t, "kitchen", up.Category)
	assert.Equal(t, p.CreatedAt, up.CreatedAt)

	// an invalid merge result is rejected and nothing is persisted
	_, err = s.Update(context.Background(), p.ID, models.ProductPatch{Price: f(-1)})
	require.Error(t, err)
	got, err := s.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.50, got.Price)
}

func TestProductUpdate_NotFound(t *testing.T) {
	t.Parallel()
	s := NewProductService(memory.NewProducts())

	_, err := s.Update(context.Background(), "a9f6d1f2-0000-0000-0000-000000000000", models.ProductPatch{Name: str("X")})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	t.Parallel()
	s := NewProductService(memory.NewProducts())

	p, err := s.Create(context.Background(), models.ProductInput{Name: "Mug", Price: f(1)})
	require.NoError(t, err)

	deleted, err := s.Delete(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, deleted.ID)

	_, err = s.Get(context.Background(), p.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = s.Delete(context.Background(), p.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestProductList(t *testing.T) {
	t.Parallel()
	s := NewProductService(memory.NewProducts())

	ps, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ps)
	assert.Len(t, ps, 0)

	_, err = s.Create(context.Background(), models.ProductInput{Name: "A", Price: f(1)})
	require.NoError(t, err)
	_, err = s.Create(context.Background(), models.ProductInput{Name: "B", Price: f(2)})
	require.NoError(t, err)

	ps, err = s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, ps, 2)
}
