package web

import (
	"errors"
	"net/http"

	"github.com/velvetbloom/catalog/internal/catalog"
	"github.com/velvetbloom/catalog/internal/logging"
)

// credentialsRequest is the signup and login payload.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		messageBody(w, http.StatusBadRequest, "Email and password are required.")
		return
	}
	if req.Email == "" || req.Password == "" {
		messageBody(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	err := s.auth.Signup(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, catalog.ErrEmailTaken):
		messageBody(w, http.StatusConflict, "Email already exists.")
	case err != nil:
		logging.FromContext(r.Context()).Error("signup failed", "error", err)
		messageBody(w, http.StatusInternalServerError, "Server error")
	default:
		messageBody(w, http.StatusOK, "Signup successful")
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		messageBody(w, http.StatusBadRequest, "Email and password are required.")
		return
	}
	if req.Email == "" || req.Password == "" {
		messageBody(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	err := s.auth.Login(r.Context(), req.Email, req.Password)
	switch {
	// Unknown email and wrong password produce the same response so the
	// endpoint does not leak which accounts exist.
	case errors.Is(err, catalog.ErrInvalidCredentials):
		messageBody(w, http.StatusUnauthorized, "Invalid email or password.")
	case err != nil:
		logging.FromContext(r.Context()).Error("login failed", "error", err)
		messageBody(w, http.StatusInternalServerError, "Server error")
	default:
		messageBody(w, http.StatusOK, "Login successful")
	}
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.auth.ListUsers(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("list users failed", "error", err)
		messageBody(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, users)
}
