package httpx

import (
	"encoding/json"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes the standard {"message": ...} failure/confirmation body.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"message": msg})
}

// WriteServerError writes a 500 with a generic message plus the underlying
// error detail. The detail field is a known information-disclosure tradeoff
// kept for diagnostics.
func WriteServerError(w http.ResponseWriter, msg string, err error) {
	WriteJSON(w, http.StatusInternalServerError, map[string]string{
		"message": msg,
		"error":   err.Error(),
	})
}
