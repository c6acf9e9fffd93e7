// Package web provides the HTTP server and JSON handlers for the
// catalog API.
package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/velvetbloom/catalog/internal/catalog"
	"github.com/velvetbloom/catalog/internal/config"
	"github.com/velvetbloom/catalog/internal/web/middleware"
)

// ProductService is the product CRUD surface the handlers depend on.
type ProductService interface {
	ListProducts(ctx context.Context) (map[string][]catalog.Record, error)
	CreateProduct(ctx context.Context, table string, fields map[string]any) (catalog.Record, error)
	UpdateProduct(ctx context.Context, table string, id int64, fields map[string]any) (catalog.Record, error)
	DeleteProduct(ctx context.Context, table string, id int64) (catalog.Record, error)
	CountProducts(ctx context.Context) (catalog.ProductCounts, error)
}

// ContactService handles contact-form submissions.
type ContactService interface {
	CreateContact(ctx context.Context, sub catalog.ContactSubmission) error
	ListContacts(ctx context.Context) ([]catalog.ContactSubmission, error)
}

// ListingService serves the read-only listings.
type ListingService interface {
	BestSellers(ctx context.Context) ([]catalog.Record, error)
	Categories(ctx context.Context) ([]catalog.Category, error)
}

// AuthService handles account signup, login, and listing.
type AuthService interface {
	Signup(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) error
	ListUsers(ctx context.Context) ([]catalog.UserSummary, error)
}

// Pinger reports backend connectivity for health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the HTTP server for the catalog API.
type Server struct {
	products ProductService
	contact  ContactService
	listings ListingService
	auth     AuthService
	health   Pinger

	cfg    *config.Config
	router *chi.Mux
	server *http.Server
}

// NewServer creates a Server backed by the catalog service.
func NewServer(service *catalog.Service, cfg *config.Config) *Server {
	s := &Server{
		products: service,
		contact:  service,
		listings: service,
		auth:     service,
		health:   service,
		cfg:      cfg,
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.Compress(5))
	s.router.Use(chimiddleware.Timeout(s.cfg.Server.RequestTimeout))

	// CORS is restricted to the single configured storefront origin.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{s.cfg.CORS.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	s.router.Use(securityHeaders)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Product CRUD across the registered category tables
	s.router.Get("/products", s.handleListProducts)
	s.router.Get("/products/count", s.handleCountProducts)
	s.router.Post("/products/{table}", s.handleCreateProduct)
	s.router.Put("/products/{table}/{id}", s.handleUpdateProduct)
	s.router.Delete("/products/{table}/{id}", s.handleDeleteProduct)

	// Product images
	s.router.Handle("/back_assets/*", http.StripPrefix("/back_assets/",
		http.FileServer(http.Dir(s.cfg.Assets.Dir))))

	// Listings
	s.router.Get("/best_sellers", s.handleBestSellers)
	s.router.Get("/categories", s.handleCategories)

	// Contact form
	s.router.Post("/contact", s.handleCreateContact)
	s.router.Get("/contact", s.handleListContacts)

	// Accounts
	s.router.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
		r.Get("/users", s.handleListUsers)
	})

	s.router.Get("/healthz", s.handleHealth)
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// handleHealth reports database connectivity.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.health.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"ok": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}
