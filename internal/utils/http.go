package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/film-vault/models"
)

// MaxRequestBodySize caps JSON request bodies accepted by [DecodeJSON].
const MaxRequestBodySize = 1 << 20

// ErrEmptyBody is returned by [DecodeJSON] when the request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.AuthResponse{Token: token}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a [models.ErrorResponse] with the given status.
// fields may be nil.
func WriteError(w http.ResponseWriter, statusCode int, message string, fields map[string]string) {
	_, _ = WriteJSON(w, models.ErrorResponse{Message: message, Errors: fields}, statusCode)
}

// DecodeJSON reads a single JSON document from r's body into dst.
// Bodies larger than [MaxRequestBodySize] and unknown fields are rejected.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, MaxRequestBodySize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("error decoding JSON body: %w", err)
	}

	return nil
}
