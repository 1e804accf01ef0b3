package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"gremaster-backend/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError reports every failure the same way: 500 with the error text.
func writeError(w http.ResponseWriter, err error) {
	log.Printf("chat failed: %v", err)
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
}
