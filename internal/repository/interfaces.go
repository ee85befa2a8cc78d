// Package repository defines the persistence adapter: a generic by-id
// document-store surface the rest of the system talks to. Implementations
// return apperr.ErrNotFound for missing ids and apperr.ErrDuplicate when a
// unique field is already taken.
package repository

import (
	"context"

	"github.com/shopstack/products-api/internal/models"
)

type Users interface {
	Insert(ctx context.Context, u models.User) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	// FindByUsernameOrEmail is a single lookup matching either field,
	// used for the signup uniqueness check.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error)
}

type Products interface {
	Insert(ctx context.Context, p models.Product) (models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (models.Product, error)
	// Update replaces the stored document with p (matched by p.ID) and
	// returns the stored result.
	Update(ctx context.Context, p models.Product) (models.Product, error)
	// Delete removes the document and returns it.
	Delete(ctx context.Context, id string) (models.Product, error)
}
