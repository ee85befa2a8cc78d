package models

import (
	"time"

	"github.com/shopstack/products-api/internal/api/validate"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the signup constraints: username >= 3 chars, a plausible
// email, password >= 6 chars before hashing.
func (r SignupRequest) Validate() error {
	var errs validate.Errs
	if e := validate.MinLen("username", r.Username, 3); e != nil {
		errs = append(errs, *e)
	}
	if e := validate.Email("email", r.Email); e != nil {
		errs = append(errs, *e)
	}
	if e := validate.MinLen("password", r.Password, 6); e != nil {
		errs = append(errs, *e)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
