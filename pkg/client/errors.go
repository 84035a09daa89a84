package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// RequestError is the uniform error for any failed API call. Detail
// carries the human-readable message extracted from the response body.
type RequestError struct {
	StatusCode int
	Detail     string
}

func (e *RequestError) Error() string {
	return e.Detail
}

// ErrNotAuthenticated is returned before any network call when an
// operation requires a token and none is held.
var ErrNotAuthenticated = &RequestError{
	StatusCode: http.StatusUnauthorized,
	Detail:     "not authenticated",
}

// IsAuthError reports whether err is an authorization failure.
func IsAuthError(err error) bool {
	re, ok := err.(*RequestError)
	return ok && re.StatusCode == http.StatusUnauthorized
}

// parseError builds a RequestError from a non-2xx response body. It
// looks for a "detail" field first, then "message". A non-string value
// is re-serialized to JSON rather than shown raw; a body that is not
// JSON at all falls back silently to a generic message.
func parseError(statusCode int, body []byte) *RequestError {
	generic := &RequestError{
		StatusCode: statusCode,
		Detail:     fmt.Sprintf("HTTP %d", statusCode),
	}
	if len(body) == 0 {
		return generic
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return generic
	}

	raw, ok := payload["detail"]
	if !ok {
		raw, ok = payload["message"]
	}
	if !ok {
		return generic
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &RequestError{StatusCode: statusCode, Detail: s}
	}

	compact, err := json.Marshal(json.RawMessage(raw))
	if err != nil {
		return generic
	}
	return &RequestError{StatusCode: statusCode, Detail: string(compact)}
}
