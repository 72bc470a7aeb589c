package httpclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Envelope is the response wrapper used by every catalog endpoint.
type Envelope[T any] struct {
	Success *bool      `json:"success,omitempty"`
	Data    T          `json:"data"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo is the structured error some backends return next to success=false.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIError is returned for non-2xx responses and for envelopes with success=false.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog API error (status %d): %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("catalog API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// MessageOf returns the backend-provided message carried by err, or "" when the
// error did not come from the API or the API gave no message.
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// MessageOr returns MessageOf(err) or fallback when there is none.
func MessageOr(err error, fallback string) string {
	if msg := MessageOf(err); msg != "" {
		return msg
	}
	return fallback
}

func decode(status int, raw []byte, out any) error {
	raw = bytes.TrimSpace(raw)

	var env Envelope[json.RawMessage]
	isEnvelope := false
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &env); err == nil {
			isEnvelope = env.Success != nil || env.Error != nil
		}
	}

	if status < 200 || status > 299 {
		apiErr := &APIError{StatusCode: status, Message: firstNonEmpty(env.Message, errorMessage(env.Error))}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
		}
		return apiErr
	}

	if isEnvelope && env.Success != nil && !*env.Success {
		apiErr := &APIError{StatusCode: status, Message: firstNonEmpty(env.Message, errorMessage(env.Error))}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	data := raw
	if isEnvelope {
		data = env.Data
		if len(data) == 0 {
			return nil
		}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response data: %w", err)
	}
	return nil
}

func errorMessage(info *ErrorInfo) string {
	if info == nil {
		return ""
	}
	return info.Message
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
