package web

import (
	"net/http"

	"github.com/velvetbloom/catalog/internal/catalog"
)

// contactRequest is the contact-form submission payload.
// All four fields are required.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		errorBody(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		errorBody(w, http.StatusBadRequest, "All fields are required")
		return
	}

	sub := catalog.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.contact.CreateContact(r.Context(), sub); err != nil {
		serverError(w, r, err, "Failed to submit contact form")
		return
	}

	messageBody(w, http.StatusCreated, "Contact form submitted successfully")
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	subs, err := s.contact.ListContacts(r.Context())
	if err != nil {
		serverError(w, r, err, "Failed to fetch contact submissions")
		return
	}
	writeJSON(w, http.StatusOK, subs)
}
