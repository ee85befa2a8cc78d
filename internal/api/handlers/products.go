package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shopstack/products-api/internal/api/httpx"
	"github.com/shopstack/products-api/internal/api/validate"
	"github.com/shopstack/products-api/internal/apperr"
	"github.com/shopstack/products-api/internal/metrics"
	"github.com/shopstack/products-api/internal/models"
	"github.com/shopstack/products-api/internal/services"
)

type ProductHandler struct {
	products *services.ProductService
}

func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// productID validates the path id before anything touches the store. A
// malformed id is answered with 400 directly.
func productID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid Product ID format.")
		return "", false
	}
	return id, true
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	p, err := h.products.Create(r.Context(), in)
	if err != nil {
		var verrs validate.Errs
		if errors.As(err, &verrs) {
			httpx.WriteMessage(w, http.StatusBadRequest, verrs.Error())
			return
		}
		slog.Error("product create", "err", err)
		httpx.WriteServerError(w, "Server error while creating product.", err)
		return
	}

	metrics.ProductWrites.WithLabelValues("create").Inc()
	httpx.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Product created successfully!",
		"product": p,
	})
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ps, err := h.products.List(r.Context())
	if err != nil {
		slog.Error("product list", "err", err)
		httpx.WriteServerError(w, "Server error while fetching products.", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ps)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	p, err := h.products.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "Product not found.")
			return
		}
		slog.Error("product get", "err", err)
		httpx.WriteServerError(w, "Server error while fetching product.", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var patch models.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	p, err := h.products.Update(r.Context(), id, patch)
	if err != nil {
		var verrs validate.Errs
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			httpx.WriteMessage(w, http.StatusNotFound, "Product not found.")
		case errors.As(err, &verrs):
			httpx.WriteMessage(w, http.StatusBadRequest, verrs.Error())
		default:
			slog.Error("product update", "err", err)
			httpx.WriteServerError(w, "Server error while updating product.", err)
		}
		return
	}

	metrics.ProductWrites.WithLabelValues("update").Inc()
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Product updated successfully!",
		"product": p,
	})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	p, err := h.products.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "Product not found.")
			return
		}
		slog.Error("product delete", "err", err)
		httpx.WriteServerError(w, "Server error while deleting product.", err)
		return
	}

	metrics.ProductWrites.WithLabelValues("delete").Inc()
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Product deleted successfully!",
		"product": p,
	})
}
