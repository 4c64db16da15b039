package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody caps how much of an error response is read for the message.
const maxErrorBody = 64 << 10

// APIError is a non-2xx answer from the league backend.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("league API: %s", http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("league API: %s (status %d)", e.Message, e.StatusCode)
}

// IsNotFound reports whether the backend answered 404, which usually means
// the record changed or disappeared under the caller.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Error string `json:"error"`
}

// newAPIError builds an APIError from a non-2xx response. The backend
// normally answers {"error": "..."}; anything else is kept verbatim.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}

	var body errorBody
	if jsonErr := json.Unmarshal(raw, &body); jsonErr == nil && body.Error != "" {
		apiErr.Message = body.Error
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}
