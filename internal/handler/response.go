package handler

import (
	"encoding/json"
	"log"
	"net/http"
)

// respondWithError sends an error response in the standard JSON envelope,
// e.g. {"error": "what went wrong"}.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJson(w, code, map[string]string{"error": message})
}

// respondWithJson marshals the payload, sets the Content-Type header and
// writes the response. A payload that cannot be marshaled is a server error.
func respondWithJson(w http.ResponseWriter, code int, payload interface{}) {
	dat, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal JSON response: %v", payload)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(dat)
}
