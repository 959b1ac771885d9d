package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sanctuaryofnature/api/internal/model"
)

// CreatedResponse is the body returned by every successful create
type CreatedResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteCreated writes a 201 response carrying the new record id
func WriteCreated(w http.ResponseWriter, id string) {
	WriteJSON(w, http.StatusCreated, CreatedResponse{ID: id, Status: "created"})
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	err.WriteJSON(w)
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// queryParams flattens the request query to a map of first values
func queryParams(r *http.Request) map[string]string {
	query := r.URL.Query()
	params := make(map[string]string, len(query))
	for key, values := range query {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
