package api

import "fmt"

// Error is a domain failure reported by the backend (bad input, duplicate
// name, missing record). Message is the server text, passed through as is.
type Error struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Endpoint == "" {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Endpoint, e.Message, e.StatusCode)
}
