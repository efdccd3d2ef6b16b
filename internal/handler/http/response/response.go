package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body: {status, message, data}. The status
// field mirrors the HTTP status code.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func JSON(w http.ResponseWriter, statusCode int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(Envelope{
		Status:  statusCode,
		Message: message,
		Data:    data,
	}); err != nil {
		_ = json.NewEncoder(w).Encode(Envelope{
			Status:  http.StatusInternalServerError,
			Message: "Failed to encode response",
		})
	}
}

func OK(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusOK, message, data)
}

func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	JSON(w, http.StatusNotFound, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	JSON(w, http.StatusInternalServerError, message, nil)
}
