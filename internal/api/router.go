package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/shopstack/products-api/internal/api/handlers"
	"github.com/shopstack/products-api/internal/auth"
	"github.com/shopstack/products-api/internal/metrics"
	"github.com/shopstack/products-api/internal/middleware"
	"github.com/shopstack/products-api/internal/services"
)

func NewRouter(users *services.UserService, products *services.ProductService, tm *auth.TokenManager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	authH := handlers.NewAuthHandler(users, tm)
	prodH := handlers.NewProductHandler(products)
	gate := middleware.NewAuthMiddleware(tm)

	r.Route("/api", func(r chi.Router) {
		r.Post("/signup", authH.Signup)
		r.Post("/login", authH.Login)

		// product reads are open
		r.Get("/products", prodH.List)
		r.Get("/products/{id}", prodH.Get)

		// writes and the probe endpoint require a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(gate.RequireToken)
			r.Get("/protected", authH.Protected)
			r.Post("/products", prodH.Create)
			r.Patch("/products/{id}", prodH.Update)
			r.Delete("/products/{id}", prodH.Delete)
		})
	})

	// catch-all keeps the HTML error page for anything unmatched
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("<h1>404 Page Not Found</h1><p>Sorry, this page does not exist!</p>"))
	})

	return r
}
