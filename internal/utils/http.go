package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// errorBody is the JSON shape of every error response of the feed server.
type errorBody struct {
	Error string `json:"error"`
}

// WriteJSON marshals data and writes it with statusCode and a JSON content
// type. When marshalling fails the client gets a 500 and the error is
// returned.
//
// Example usage:
//
//	utils.WriteJSON(w, models.StatementsPage{NextID: "EOF"}, http.StatusOK)
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

// WriteError writes {"error": message} with statusCode.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, errorBody{Error: message}, statusCode)
}
