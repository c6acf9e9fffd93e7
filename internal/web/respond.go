package web

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/velvetbloom/catalog/internal/logging"
)

// maxBodySize caps request bodies; catalog payloads are small.
const maxBodySize = 1 << 20 // 1MB

// writeJSON encodes v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent at this point, so just log encode failures.
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", "error", err)
	}
}

// errorBody writes the {"error": ...} shape used by the catalog,
// contact, and listing endpoints.
func errorBody(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// messageBody writes the {"message": ...} shape used by the auth
// endpoints.
func messageBody(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// serverError logs the technical error with request context and
// returns a generic message to the client. The underlying detail never
// leaves the server.
func serverError(w http.ResponseWriter, r *http.Request, err error, clientMsg string) {
	logging.FromContext(r.Context()).Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	errorBody(w, http.StatusInternalServerError, clientMsg)
}

// decodeJSON reads a JSON request body into dst, enforcing the body
// size cap. An empty body or malformed JSON returns an error for the
// caller to turn into a 400.
func decodeJSON(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodySize)
	defer io.Copy(io.Discard, body)

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return err
	}
	return nil
}
