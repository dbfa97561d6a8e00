package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

// Response is the result of one remote call. It is never nil and never
// carries a Go error: transport failures are folded into a FAILED payload
// with StatusCode 0.
type Response struct {
	OK         bool
	StatusCode int
	Data       Payload
}

// Unauthorized reports whether the backend rejected the presented token.
func (r *Response) Unauthorized() bool {
	return r.StatusCode == http.StatusUnauthorized
}

// Succeeded reports whether the payload says SUCCESS.
func (r *Response) Succeeded() bool {
	return r.Data.Succeeded()
}

// NetworkFailure builds the response used when no reply was obtained.
func NetworkFailure() *Response {
	return &Response{
		OK:         false,
		StatusCode: 0,
		Data: Payload{
			common.FieldStatus:  common.StatusFailed,
			common.FieldMessage: common.NetworkErrorMessage,
		},
	}
}

// Payload is the decoded JSON body of a response.
type Payload map[string]any

// Status is the "status" field, or "" when missing.
func (p Payload) Status() string {
	return p.String(common.FieldStatus)
}

func (p Payload) Succeeded() bool {
	return p.Status() == common.StatusSuccess
}

// Message picks the user-facing text of a reply: "msg", then "error",
// then fallback.
func (p Payload) Message(fallback string) string {
	if m := p.String(common.FieldMessage); m != "" {
		return m
	}
	if m := p.String(common.FieldError); m != "" {
		return m
	}
	return fallback
}

// String returns a string field, or "" when missing or of another type.
func (p Payload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Has reports whether key is present with a non-null value.
func (p Payload) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// Decode re-reads the field key into v (a pointer), e.g. a list of folders.
func (p Payload) Decode(key string, v any) error {
	raw, ok := p[key]
	if !ok {
		return fmt.Errorf("payload has no %q field", key)
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}
