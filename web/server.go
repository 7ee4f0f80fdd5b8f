// Package web is the consumer-facing HTTP surface: product list and detail,
// cart operations, the header badge summary, theme preference, and the
// contact form. Handlers only ever call the storefront service's operations
// and derived queries; none of them touch persisted state directly.
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"goflare.io/storefront"
)

// Config holds runtime options for the HTTP server.
type Config struct {
	Address string
}

// New constructs the HTTP server with its middleware stack and routes.
func New(cfg Config, svc storefront.Service, logger *zap.Logger) *http.Server {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(60 * time.Second))

	h := &handlers{svc: svc, logger: logger}

	router.Get("/health", h.health)

	router.Route("/api", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/{productID}", h.getProduct)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.getCart)
			r.Delete("/", h.clearCart)
			r.Get("/summary", h.cartSummary)
			r.Get("/checkout", h.checkoutHandoff)
			r.Post("/items", h.addItem)
			r.Put("/items/{productID}", h.updateQuantity)
			r.Delete("/items/{productID}", h.removeItem)
		})

		r.Get("/theme", h.getTheme)
		r.Put("/theme", h.setTheme)

		r.Post("/contact", h.submitContact)
	})

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
