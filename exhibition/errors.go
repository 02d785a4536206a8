package exhibition

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error represents a failed API call. The remote service reports
// failures as prose, so Message is the only structured content
// available beyond the HTTP status.
type Error struct {
	// StatusCode is the HTTP status code, or 0 when the failure was
	// reported inside a 2xx envelope.
	StatusCode int `json:"-"`
	// Message is the human-readable error message from the envelope.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s", http.StatusText(e.StatusCode), e.Message)
	}
	return e.Message
}

// Message substrings the remote service is known to emit for domain
// rules. Matched here and nowhere else.
const (
	msgZoneHasStalls = "Cannot delete zone that contains stalls"
	msgStallNotFound = "Stall not found"
)

// IsZoneHasStalls reports whether the error is the remote rejection of
// deleting a zone that still owns stalls.
func (e *Error) IsZoneHasStalls() bool {
	return strings.Contains(e.Message, msgZoneHasStalls)
}

// IsStallNotFound reports whether the error is the remote "Stall not
// found" response. The API emits this both for an unknown zone id and
// for a zone with zero stalls; callers that asked for a known zone may
// treat it as an empty list.
func (e *Error) IsStallNotFound() bool {
	return strings.Contains(e.Message, msgStallNotFound)
}

// friendlyCopy maps known remote prose to the message shown to admins.
var friendlyCopy = []struct {
	match string
	copy  string
}{
	{
		match: msgZoneHasStalls,
		copy: "Cannot delete this zone because it contains stalls. " +
			"Please delete all stalls in this zone first before trying to delete the zone.",
	},
}

// FriendlyMessage returns display copy for err. Known domain-rule
// rejections get rewritten; everything else passes through as-is.
func FriendlyMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	var apiErr *Error
	if errors.As(err, &apiErr) {
		msg = apiErr.Message
	}
	for _, f := range friendlyCopy {
		if strings.Contains(msg, f.match) {
			return f.copy
		}
	}
	return msg
}

// AsAPIError checks if an error is an API error and returns it.
func AsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// errorResult is the shape of results entries in a failure envelope.
// The service puts the useful message there rather than in the
// top-level message field.
type errorResult struct {
	Message string `json:"message"`
}

// parseError extracts an error from a non-2xx response body.
func parseError(statusCode int, body []byte) error {
	var env struct {
		Status  string        `json:"status"`
		Message string        `json:"message"`
		Results []errorResult `json:"results"`
	}

	if err := json.Unmarshal(body, &env); err == nil {
		if len(env.Results) > 0 && env.Results[0].Message != "" {
			return &Error{StatusCode: statusCode, Message: env.Results[0].Message}
		}
		if env.Message != "" {
			return &Error{StatusCode: statusCode, Message: env.Message}
		}
	}

	return &Error{StatusCode: statusCode, Message: "API request failed"}
}
