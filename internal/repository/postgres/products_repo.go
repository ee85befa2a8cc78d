package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopstack/products-api/internal/apperr"
	"github.com/shopstack/products-api/internal/models"
	"github.com/shopstack/products-api/internal/repository"
)

type productsRepo struct{ pool *pgxpool.Pool }

func NewProducts(pool *pgxpool.Pool) repository.Products {
	return &productsRepo{pool: pool}
}

func (r *productsRepo) Insert(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = uuid.NewString()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO products(id, name, price, category, description) VALUES($1,$2,$3,$4,$5) RETURNING created_at`,
		p.ID, p.Name, p.Price, p.Category, p.Description,
	).Scan(&p.CreatedAt)
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *productsRepo) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, price, category, description, created_at FROM products ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *productsRepo) GetByID(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, price, category, description, created_at FROM products WHERE id=$1`, id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Description, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Product{}, apperr.ErrNotFound
	}
	return p, err
}

func (r *productsRepo) Update(ctx context.Context, p models.Product) (models.Product, error) {
	err := r.pool.QueryRow(ctx,
		`UPDATE products SET name=$2, price=$3, category=$4, description=$5 WHERE id=$1 RETURNING created_at`,
		p.ID, p.Name, p.Price, p.Category, p.Description,
	).Scan(&p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Product{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *productsRepo) Delete(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	err := r.pool.QueryRow(ctx,
		`DELETE FROM products WHERE id=$1 RETURNING id, name, price, category, description, created_at`, id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Description, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Product{}, apperr.ErrNotFound
	}
	return p, err
}
