package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }
func str(v string) *string { return &v }

func TestProductInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      ProductInput
		wantErr string
	}{
		{"valid", ProductInput{Name: "Mug", Price: f(9.99)}, ""},
		{"free is allowed", ProductInput{Name: "Sticker", Price: f(0)}, ""},
		{"missing name", ProductInput{Price: f(5)}, "name: required"},
		{"missing price", ProductInput{Name: "Mug"}, "price: required"},
		{"negative price", ProductInput{Name: "Mug", Price: f(-5)}, "price: must be >= 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProductPatchApply(t *testing.T) {
	p := Product{ID: "x", Name: "Mug", Price: 9.99, Category: "kitchen", Description: "ceramic"}

	ProductPatch{Price: f(12.50)}.Apply(&p)
	assert.Equal(t, 12.50, p.Price)
	assert.Equal(t, "Mug", p.Name)
	assert.Equal(t, "kitchen", p.Category)

	ProductPatch{Name: str(""), Description: str("")}.Apply(&p)
	assert.Empty(t, p.Name)
	assert.Empty(t, p.Description)
	// merged document no longer satisfies the create invariants
	require.Error(t, p.Validate())
}
