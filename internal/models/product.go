package models

import (
	"time"

	"github.com/shopstack/products-api/internal/api/validate"
)

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Product) Validate() error {
	var errs validate.Errs
	if e := validate.Required("name", p.Name); e != nil {
		errs = append(errs, *e)
	}
	if e := validate.MinFloat("price", p.Price, 0); e != nil {
		errs = append(errs, *e)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ProductInput is the create payload. Price is a pointer so that a missing
// price can be told apart from an explicit zero.
type ProductInput struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
}

func (in ProductInput) Validate() error {
	var errs validate.Errs
	if e := validate.Required("name", in.Name); e != nil {
		errs = append(errs, *e)
	}
	if e := validate.RequiredNumber("price", in.Price); e != nil {
		errs = append(errs, *e)
	} else if e := validate.MinFloat("price", *in.Price, 0); e != nil {
		errs = append(errs, *e)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (in ProductInput) Product() Product {
	p := Product{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	return p
}

// ProductPatch carries the fields of a partial update. Nil means "leave as
// is"; the merged document is re-validated as a whole before persisting.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
}

func (pp ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
}
