package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors maps the portal status codes that carry meaning for the
// client to their sentinels. Anything else is reported as "http <code>".
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// mapHTTPError converts a non-2xx portal response into a sentinel wrapped
// with the response message: "<sentinel>: <message>".
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())
	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	if msg == "" {
		msg = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, msg)
}

// errorMessage returns the "error" field of a JSON error body, or the
// trimmed body itself. The portal answers proxy failures with
// {"error": "..."} and routing failures with plain text.
func errorMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))

	var payload struct {
		Error string `json:"error"`
	}
	if strings.HasPrefix(trimmed, "{") && json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return trimmed
}
