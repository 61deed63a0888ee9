package tasksdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-success response from the API.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("tasks api: HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("tasks api: HTTP %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// HasMessage reports whether the response carried msg.
func (e *APIError) HasMessage(msg string) bool {
	for _, m := range e.Messages {
		if m == msg {
			return true
		}
	}
	return false
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// parseErrorResponse turns a failed response body into an *APIError. Bodies
// that are not an envelope fall back to the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var env ErrorResponse
	if err := json.Unmarshal(body, &env); err == nil && len(env.Messages) > 0 {
		apiErr.Messages = env.Messages
	}

	return apiErr
}
