package services

import (
	"errors"

	"github.com/dmitrijs2005/notekeeper/internal/client/api"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("session expired, please log in again")

	ErrTitleRequired     = errors.New("title is required")
	ErrNameRequired      = errors.New("folder name is required")
	ErrNothingToChange   = errors.New("nothing to change")
	ErrCodeFormat        = errors.New("enter the 6-digit code from your email")
	ErrEmailRequired     = errors.New("email is required")
	ErrTokenRequired     = errors.New("enter the reset token from your email")
	ErrPasswordRequired  = errors.New("enter and confirm the new password")
	ErrPasswordsMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters")
)

// MinPasswordLength is enforced locally before a reset is sent.
const MinPasswordLength = 6

// fromResponse turns a failed reply into an error. It returns nil when the
// payload reports SUCCESS.
func fromResponse(endpoint string, resp *api.Response, fallback string) error {
	switch {
	case resp.Succeeded():
		return nil
	case resp.StatusCode == 0:
		return ErrUnavailable
	case resp.Unauthorized():
		return ErrUnauthorized
	}
	return &api.Error{
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
		Message:    resp.Data.Message(fallback),
	}
}
