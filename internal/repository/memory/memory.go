// Package memory holds map-backed implementations of the repository
// interfaces. They carry the same not-found and duplicate semantics as the
// postgres ones and are safe for concurrent use.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shopstack/products-api/internal/apperr"
	"github.com/shopstack/products-api/internal/models"
	"github.com/shopstack/products-api/internal/repository"
)

type usersRepo struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUsers() repository.Users {
	return &usersRepo{users: make(map[string]models.User)}
}

func (r *usersRepo) Insert(_ context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Username == u.Username || e.Email == u.Email {
			return models.User{}, apperr.ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	return u, nil
}

func (r *usersRepo) FindByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, apperr.ErrNotFound
}

func (r *usersRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return models.User{}, apperr.ErrNotFound
}

type productsRepo struct {
	mu       sync.RWMutex
	products map[string]models.Product
	order    []string
}

func NewProducts() repository.Products {
	return &productsRepo{products: make(map[string]models.Product)}
}

func (r *productsRepo) Insert(_ context.Context, p models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	r.products[p.ID] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *productsRepo) List(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Product{}
	for _, id := range r.order {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *productsRepo) GetByID(_ context.Context, id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return models.Product{}, apperr.ErrNotFound
	}
	return p, nil
}

func (r *productsRepo) Update(_ context.Context, p models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.products[p.ID]
	if !ok {
		return models.Product{}, apperr.ErrNotFound
	}
	p.CreatedAt = cur.CreatedAt
	r.products[p.ID] = p
	return p, nil
}

func (r *productsRepo) Delete(_ context.Context, id string) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return models.Product{}, apperr.ErrNotFound
	}
	delete(r.products, id)
	return p, nil
}
