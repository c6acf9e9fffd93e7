package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/velvetbloom/catalog/internal/catalog"
)

// productResponse is the success shape for create and update.
type productResponse struct {
	Success bool           `json:"success"`
	Product catalog.Record `json:"product"`
}

// deleteResponse is the success shape for delete.
type deleteResponse struct {
	Success bool           `json:"success"`
	Deleted catalog.Record `json:"deleted_product"`
}

// tableParam validates the table path parameter against the registry
// before any statement is issued. Unknown names get a 400 and never
// reach the database.
func tableParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	table := chi.URLParam(r, "table")
	if _, ok := catalog.Lookup(table); !ok {
		errorBody(w, http.StatusBadRequest, "Invalid product table")
		return "", false
	}
	return table, true
}

// idParam parses the numeric product identifier path parameter.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		errorBody(w, http.StatusBadRequest, "Invalid product id")
		return 0, false
	}
	return id, true
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	data, err := s.products.ListProducts(r.Context())
	if err != nil {
		serverError(w, r, err, "Failed to fetch products")
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	table, ok := tableParam(w, r)
	if !ok {
		return
	}

	var fields map[string]any
	if err := decodeJSON(r, &fields); err != nil {
		errorBody(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if len(fields) == 0 {
		errorBody(w, http.StatusBadRequest, "No data provided")
		return
	}

	product, err := s.products.CreateProduct(r.Context(), table, fields)
	switch {
	case errors.Is(err, catalog.ErrInvalidColumn):
		errorBody(w, http.StatusBadRequest, "Invalid column name")
	case err != nil:
		serverError(w, r, err, "Failed to add product")
	default:
		writeJSON(w, http.StatusCreated, productResponse{Success: true, Product: product})
	}
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	table, ok := tableParam(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var fields map[string]any
	if err := decodeJSON(r, &fields); err != nil {
		errorBody(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if len(fields) == 0 {
		errorBody(w, http.StatusBadRequest, "No data provided for update")
		return
	}

	product, err := s.products.UpdateProduct(r.Context(), table, id, fields)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		errorBody(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, catalog.ErrInvalidColumn):
		errorBody(w, http.StatusBadRequest, "Invalid column name")
	case err != nil:
		serverError(w, r, err, "Failed to update product")
	default:
		writeJSON(w, http.StatusOK, productResponse{Success: true, Product: product})
	}
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	table, ok := tableParam(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	deleted, err := s.products.DeleteProduct(r.Context(), table, id)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		errorBody(w, http.StatusNotFound, "Product not found")
	case err != nil:
		serverError(w, r, err, "Failed to delete product")
	default:
		writeJSON(w, http.StatusOK, deleteResponse{Success: true, Deleted: deleted})
	}
}

func (s *Server) handleCountProducts(w http.ResponseWriter, r *http.Request) {
	counts, err := s.products.CountProducts(r.Context())
	if err != nil {
		serverError(w, r, err, "Failed to count products")
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
