package session

import "github.com/dmitrijs2005/notekeeper/internal/client/api"

// Fallback texts used when the backend gives no message.
const (
	MsgLoginFailed  = "Login failed"
	MsgSignupFailed = "Signup failed"
)

// Result is the outcome of SignIn and SignUp. Failures are values, never
// Go errors, so callers can always print Message.
type Result struct {
	Succeeded  bool
	StatusCode int
	Message    string
	Payload    api.Payload
}

func failure(resp *api.Response, fallback string) Result {
	return Result{
		Succeeded:  false,
		StatusCode: resp.StatusCode,
		Message:    resp.Data.Message(fallback),
		Payload:    resp.Data,
	}
}
