package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrQuestionNotFound is returned when a question lookup matches zero rows.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrUserNotFound is returned when a user lookup matches zero rows.
	ErrUserNotFound = errors.New("user not found")
	// ErrTabularNotConfigured is returned when the tabular backend credentials are absent.
	ErrTabularNotConfigured = errors.New("tabular backend is not configured")
)

// TabularRemediation tells the operator how to bring the tabular backend online.
const TabularRemediation = "Airtable is not configured. Set AIRTABLE_API_KEY and AIRTABLE_BASE_ID."

// AdapterError carries a remote store failure together with the structured
// error body the backend returned, when one was available.
type AdapterError struct {
	Op         string
	StatusCode int
	Body       map[string]interface{}
	Err        error
}

func (e *AdapterError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: remote store returned status %d", e.Op, e.StatusCode)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

// Envelope is the uniform JSON response shape returned by every handler.
// Success discriminates; the payload keys are populated per route.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
	Record  interface{} `json:"record,omitempty"`
	Records interface{} `json:"records,omitempty"`
	Users   interface{} `json:"users,omitempty"`
	Count   int         `json:"count,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    interface{}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Envelope converts an HTTPError to the failure envelope.
func (e *HTTPError) Envelope() Envelope {
	return Envelope{
		Success: false,
		Message: e.Message,
		Details: e.Details,
	}
}

// MapErrorToHTTP maps domain and adapter errors to HTTP errors.
// Not-found stays a 500 here: the API exposes no 404 semantics.
func MapErrorToHTTP(err error) *HTTPError {
	var adapterErr *AdapterError
	switch {
	case errors.Is(err, ErrTabularNotConfigured):
		return &HTTPError{StatusCode: http.StatusServiceUnavailable, Message: TabularRemediation}
	case errors.Is(err, ErrQuestionNotFound), errors.Is(err, ErrUserNotFound):
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	case errors.As(err, &adapterErr):
		return &HTTPError{
			StatusCode: http.StatusInternalServerError,
			Message:    adapterErr.Error(),
			Details:    adapterErr.Body,
		}
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "internal server error"}
	}
}
