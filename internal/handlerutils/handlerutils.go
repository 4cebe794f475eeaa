package handlerutils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIHandler is a http.HandlerFunc that returns an error so error handling
// can be centralized in the middlewares package.
type APIHandler func(w http.ResponseWriter, r *http.Request) error

type successResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

func ParseJSON(r *http.Request, payload any) error {
	if r.Body == nil {
		return fmt.Errorf("missing request body")
	}

	return json.NewDecoder(r.Body).Decode(payload)
}

func WriteJSON(w http.ResponseWriter, statusCode int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(v)
}

func WriteSuccessJSON(w http.ResponseWriter, statusCode int, message string, data any) error {
	return WriteJSON(
		w,
		statusCode,
		successResponse{
			Status:  "success",
			Message: message,
			Data:    data,
		},
	)
}

func WriteErrorJSON(w http.ResponseWriter, statusCode int, message string, errors any) {
	_ = WriteJSON(
		w,
		statusCode,
		errorResponse{
			Status:  "error",
			Message: message,
			Errors:  errors,
		},
	)
}
