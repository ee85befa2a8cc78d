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

type usersRepo struct{ pool *pgxpool.Pool }

func NewUsers(pool *pgxpool.Pool) repository.Users {
	return &usersRepo{pool: pool}
}

func (r *usersRepo) Insert(ctx context.Context, u models.User) (models.User, error) {
	u.ID = uuid.NewString()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users(id, username, email, password_hash) VALUES($1,$2,$3,$4) RETURNING created_at`,
		u.ID, u.Username, u.Email, u.PasswordHash,
	).Scan(&u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, apperr.ErrDuplicate
		}
		return models.User{}, err
	}
	return u, nil
}

func (r *usersRepo) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE username=$1`,
		username)
}

func (r *usersRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error) {
	return r.findOne(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE username=$1 OR email=$2 LIMIT 1`,
		username, email)
}

func (r *usersRepo) findOne(ctx context.Context, query string, args ...any) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, apperr.ErrNotFound
	}
	return u, err
}
