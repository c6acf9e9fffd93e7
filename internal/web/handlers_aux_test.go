package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/velvetbloom/catalog/internal/catalog"
)

func TestCreateContact(t *testing.T) {
	var got catalog.ContactSubmission
	stub := &stubService{
		createContactFn: func(_ context.Context, sub catalog.ContactSubmission) error {
			got = sub
			return nil
		},
	}
	resp, body := doJSON(t, newTestServer(t, stub), http.MethodPost, "/contact",
		`{"name":"Ana","email":"ana@example.com","subject":"Order","message":"Hi"}`)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	if body["message"] != "Contact form submitted successfully" {
		t.Errorf("message = %v", body["message"])
	}
	if got.Name != "Ana" || got.Email != "ana@example.com" {
		t.Errorf("stored submission = %+v", got)
	}
}

func TestCreateContact_MissingFields(t *testing.T) {
	payloads := []string{
		`{"email":"a@b.c","subject":"s","message":"m"}`,
		`{"name":"Ana","subject":"s","message":"m"}`,
		`{"name":"Ana","email":"a@b.c","message":"m"}`,
		`{"name":"Ana","email":"a@b.c","subject":"s"}`,
		`{}`,
	}

	for _, payload := range payloads {
		stub := &stubService{}
		resp, body := doJSON(t, newTestServer(t, stub), http.MethodPost, "/contact", payload)

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("payload %s: status = %d, want %d", payload, resp.StatusCode, http.StatusBadRequest)
		}
		if body["error"] != "All fields are required" {
			t.Errorf("payload %s: error = %v", payload, body["error"])
		}
		if stub.calls != 0 {
			t.Errorf("payload %s: service calls = %d, want 0", payload, stub.calls)
		}
	}
}

func TestListContacts(t *testing.T) {
	stub := &stubService{
		listContactsFn: func(context.Context) ([]catalog.ContactSubmission, error) {
			return []catalog.ContactSubmission{
				{ID: 2, Name: "Ben", Email: "ben@example.com", Subject: "Late", Message: "Where?"},
				{ID: 1, Name: "Ana", Email: "ana@example.com", Subject: "Order", Message: "Hi"},
			}, nil
		},
	}
	s := newTestServer(t, stub)

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var subs []catalog.ContactSubmission
	if err := json.NewDecoder(rec.Body).Decode(&subs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(subs) != 2 || subs[0].ID != 2 {
		t.Errorf("submissions = %+v, want newest first", subs)
	}
}

func TestBestSellers(t *testing.T) {
	stub := &stubService{
		bestSellersFn: func(context.Context) ([]catalog.Record, error) {
			return []catalog.Record{{"id": int64(1), "name": "Rose Bouquet"}}, nil
		},
	}
	s := newTestServer(t, stub)

	req := httptest.NewRequest(http.MethodGet, "/best_sellers", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var sellers []map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&sellers); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sellers) != 1 || sellers[0]["name"] != "Rose Bouquet" {
		t.Errorf("best sellers = %v", sellers)
	}
}

func TestCategories(t *testing.T) {
	stub := &stubService{
		categoriesFn: func(context.Context) ([]catalog.Category, error) {
			return []catalog.Category{{ID: 1, Name: "Earrings"}, {ID: 2, Name: "Mirrors"}}, nil
		},
	}
	s := newTestServer(t, stub)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var categories []catalog.Category
	if err := json.NewDecoder(rec.Body).Decode(&categories); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(categories) != 2 || categories[0].ID != 1 {
		t.Errorf("categories = %+v, want ordered by id", categories)
	}
}

func TestSignup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stub := &stubService{
			signupFn: func(_ context.Context, email, password string) error {
				if email != "ana@example.com" || password != "hunter2" {
					t.Errorf("credentials = %q/%q", email, password)
				}
				return nil
			},
		}
		resp, body := doJSON(t, newTestServer(t, stub), http.MethodPost, "/api/auth/signup",
			`{"email":"ana@example.com","password":"hunter2"}`)

		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
		if body["message"] != "Signup successful" {
			t.Errorf("message = %v", body["message"])
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		for _, payload := range []string{`{"email":"a@b.c"}`, `{"password":"x"}`, `{}`} {
			stub := &stubService{}
			resp, body := doJSON(t, newTestServer(t, stub), http.MethodPost, "/api/auth/signup", payload)

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("payload %s: status = %d, want %d", payload, resp.StatusCode, http.StatusBadRequest)
			}
			if body["message"] != "Email and password are required." {
				t.Errorf("payload %s: message = %v", payload, body["message"])
			}
			if stub.calls != 0 {
				t.Errorf("payload %s: service calls = %d, want 0", payload, stub.calls)
			}
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		stub := &stubService{
			signupFn: func(context.Context, string, string) error { return catalog.ErrEmailTaken },
		}
		resp, body := doJSON(t, newTestServer(t, stub), http.MethodPost, "/api/auth/signup",
			`{"email":"ana@example.com","password":"hunter2"}`)

		if resp.StatusCode != http.StatusConflict {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusConflict)
		}
		if body["message"] != "Email already exists." {
			t.Errorf("message = %v", body["message"])
		}
	})
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stub := &stubService{
			loginFn: func(context.Context, string, string) error { return nil },
		}
		resp, body := doJSON(t, newTestServer(t, stub), http.MethodPost, "/api/auth/login",
			`{"email":"ana@example.com","password":"hunter2"}`)

		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
		if body["message"] != "Login successful" {
			t.Errorf("message = %v", body["message"])
		}
	})

	// Unknown email and wrong password must be indistinguishable to the
	// caller: same status, same body.
	t.Run("invalid credentials are undifferentiated", func(t *testing.T) {
		responses := make([]string, 0, 2)

		for i := 0; i < 2; i++ {
			stub := &stubService{
				loginFn: func(context.Context, string, string) error {
					return catalog.ErrInvalidCredentials
				},
			}
			s := newTestServer(t, stub)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
				strings.NewReader(`{"email":"x@y.z","password":"nope"}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			s.Router().ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			raw, _ := io.ReadAll(rec.Body)
			responses = append(responses, string(raw))
		}

		if responses[0] != responses[1] {
			t.Errorf("response bodies differ: %q vs %q", responses[0], responses[1])
		}
	})
}

func TestListUsers(t *testing.T) {
	stub := &stubService{
		listUsersFn: func(context.Context) ([]catalog.UserSummary, error) {
			return []catalog.UserSummary{{ID: 1, Email: "ana@example.com"}}, nil
		},
	}
	s := newTestServer(t, stub)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	raw, _ := io.ReadAll(rec.Body)
	if strings.Contains(string(raw), "password") {
		t.Errorf("user listing leaked a password field: %s", raw)
	}

	var users []catalog.UserSummary
	if err := json.Unmarshal(raw, &users); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(users) != 1 || users[0].Email != "ana@example.com" {
		t.Errorf("users = %+v", users)
	}
}
