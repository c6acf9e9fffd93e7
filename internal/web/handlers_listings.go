package web

import "net/http"

func (s *Server) handleBestSellers(w http.ResponseWriter, r *http.Request) {
	sellers, err := s.listings.BestSellers(r.Context())
	if err != nil {
		serverError(w, r, err, "Failed to fetch best sellers")
		return
	}
	writeJSON(w, http.StatusOK, sellers)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.listings.Categories(r.Context())
	if err != nil {
		serverError(w, r, err, "Failed to fetch categories")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
