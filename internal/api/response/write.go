package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Error writes the side-channel error envelope
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]any{
		"ok":    false,
		"error": message,
	})
}
