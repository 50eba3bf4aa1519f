// Package httputils holds the JSON request and response helpers used by the
// HTTP API.
package httputils

import (
	"errors"
	"net/http"
)

// HTTPError is an error with the status code it should be reported as.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// HandleError writes err as a JSON error body. Errors that are not an
// *HTTPError become a 500 with a generic message.
func HandleError(w http.ResponseWriter, err error) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		JSONError(w, httpErr.Code, httpErr.Message)
	} else {
		JSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
