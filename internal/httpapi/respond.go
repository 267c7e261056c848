package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"tasktracker/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// respondError maps service-layer error kinds onto client statuses; anything
// unclassified is a 500 with the detail kept server-side.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case service.IsNotFound(err):
		errorJSON(w, http.StatusNotFound, err.Error())
	case service.IsDuplicate(err):
		errorJSON(w, http.StatusConflict, err.Error())
	default:
		log.Printf("internal error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
