package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/velvetbloom/catalog/internal/catalog"
	"github.com/velvetbloom/catalog/internal/config"
)

// stubService implements every handler-facing interface with function
// fields. Calls are counted so tests can assert an operation was never
// reached. A nil function field reports an unexpected call.
type stubService struct {
	calls int

	listProductsFn  func(context.Context) (map[string][]catalog.Record, error)
	createProductFn func(context.Context, string, map[string]any) (catalog.Record, error)
	updateProductFn func(context.Context, string, int64, map[string]any) (catalog.Record, error)
	deleteProductFn func(context.Context, string, int64) (catalog.Record, error)
	countProductsFn func(context.Context) (catalog.ProductCounts, error)

	createContactFn func(context.Context, catalog.ContactSubmission) error
	listContactsFn  func(context.Context) ([]catalog.ContactSubmission, error)

	bestSellersFn func(context.Context) ([]catalog.Record, error)
	categoriesFn  func(context.Context) ([]catalog.Category, error)

	signupFn    func(context.Context, string, string) error
	loginFn     func(context.Context, string, string) error
	listUsersFn func(context.Context) ([]catalog.UserSummary, error)

	pingFn func(context.Context) error
}

var errUnexpectedCall = errors.New("unexpected service call")

func (s *stubService) ListProducts(ctx context.Context) (map[string][]catalog.Record, error) {
	s.calls++
	if s.listProductsFn == nil {
		return nil, errUnexpectedCall
	}
	return s.listProductsFn(ctx)
}

func (s *stubService) CreateProduct(ctx context.Context, table string, fields map[string]any) (catalog.Record, error) {
	s.calls++
	if s.createProductFn == nil {
		return nil, errUnexpectedCall
	}
	return s.createProductFn(ctx, table, fields)
}

func (s *stubService) UpdateProduct(ctx context.Context, table string, id int64, fields map[string]any) (catalog.Record, error) {
	s.calls++
	if s.updateProductFn == nil {
		return nil, errUnexpectedCall
	}
	return s.updateProductFn(ctx, table, id, fields)
}

func (s *stubService) DeleteProduct(ctx context.Context, table string, id int64) (catalog.Record, error) {
	s.calls++
	if s.deleteProductFn == nil {
		return nil, errUnexpectedCall
	}
	return s.deleteProductFn(ctx, table, id)
}

func (s *stubService) CountProducts(ctx context.Context) (catalog.ProductCounts, error) {
	s.calls++
	if s.countProductsFn == nil {
		return catalog.ProductCounts{}, errUnexpectedCall
	}
	return s.countProductsFn(ctx)
}

func (s *stubService) CreateContact(ctx context.Context, sub catalog.ContactSubmission) error {
	s.calls++
	if s.createContactFn == nil {
		return errUnexpectedCall
	}
	return s.createContactFn(ctx, sub)
}

func (s *stubService) ListContacts(ctx context.Context) ([]catalog.ContactSubmission, error) {
	s.calls++
	if s.listContactsFn == nil {
		return nil, errUnexpectedCall
	}
	return s.listContactsFn(ctx)
}

func (s *stubService) BestSellers(ctx context.Context) ([]catalog.Record, error) {
	s.calls++
	if s.bestSellersFn == nil {
		return nil, errUnexpectedCall
	}
	return s.bestSellersFn(ctx)
}

func (s *stubService) Categories(ctx context.Context) ([]catalog.Category, error) {
	s.calls++
	if s.categoriesFn == nil {
		return nil, errUnexpectedCall
	}
	return s.categoriesFn(ctx)
}

func (s *stubService) Signup(ctx context.Context, email, password string) error {
	s.calls++
	if s.signupFn == nil {
		return errUnexpectedCall
	}
	return s.signupFn(ctx, email, password)
}

func (s *stubService) Login(ctx context.Context, email, password string) error {
	s.calls++
	if s.loginFn == nil {
		return errUnexpectedCall
	}
	return s.loginFn(ctx, email, password)
}

func (s *stubService) ListUsers(ctx context.Context) ([]catalog.UserSummary, error) {
	s.calls++
	if s.listUsersFn == nil {
		return nil, errUnexpectedCall
	}
	return s.listUsersFn(ctx)
}

func (s *stubService) Ping(ctx context.Context) error {
	s.calls++
	if s.pingFn == nil {
		return errUnexpectedCall
	}
	return s.pingFn(ctx)
}

// newTestServer wires a Server around the stub with test configuration.
func newTestServer(t *testing.T, stub *stubService) *Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.RequestTimeout = 5 * time.Second
	cfg.CORS.AllowedOrigin = "http://localhost:5173"
	cfg.Assets.Dir = t.TempDir()

	s := &Server{
		products: stub,
		contact:  stub,
		listings: stub,
		auth:     stub,
		health:   stub,
		cfg:      cfg,
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// doJSON performs a request against the server and decodes the JSON body.
func doJSON(t *testing.T, s *Server, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	resp := rec.Result()
	var decoded map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			// Some endpoints return arrays; callers decode those themselves.
			decoded = nil
		}
	}
	return resp, decoded
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		stub := &stubService{pingFn: func(context.Context) error { return nil }}
		resp, body := doJSON(t, newTestServer(t, stub), http.MethodGet, "/healthz", "")

		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
		if body["ok"] != true {
			t.Errorf("ok = %v, want true", body["ok"])
		}
	})

	t.Run("database down", func(t *testing.T) {
		stub := &stubService{pingFn: func(context.Context) error { return errors.New("down") }}
		resp, body := doJSON(t, newTestServer(t, stub), http.MethodGet, "/healthz", "")

		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusServiceUnavailable)
		}
		if body["ok"] != false {
			t.Errorf("ok = %v, want false", body["ok"])
		}
	})
}

func TestRequestIDHeader(t *testing.T) {
	stub := &stubService{pingFn: func(context.Context) error { return nil }}
	s := newTestServer(t, stub)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID header")
	}

	// An incoming ID is echoed back unchanged.
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "test-id-123" {
		t.Errorf("X-Request-ID = %q, want %q", got, "test-id-123")
	}
}
