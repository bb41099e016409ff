// Package httpx provides JSON response utilities.
package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Detail sends an error body of the form {"detail": detail}. The detail value
// is a string for simple errors and a field-error list for validation
// failures.
func Detail(w http.ResponseWriter, status int, detail any) {
	JSON(w, status, map[string]any{"detail": detail})
}

// Message sends a success body of the form {"message": message}.
func Message(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, map[string]string{"message": message})
}

// DecodeJSON decodes a JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
