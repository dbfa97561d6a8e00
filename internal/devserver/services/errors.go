package services

import "errors"

var (
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrNotVerified         = errors.New("email not verified")
	ErrInvalidCode         = errors.New("invalid verification code")
	ErrInvalidResetToken   = errors.New("invalid reset token")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrUnknownEmail        = errors.New("unknown email")
	ErrFolderNotFound      = errors.New("folder not found")
	ErrNoteNotFound        = errors.New("note not found")
	ErrInternal            = errors.New("internal error")
)

// ValidationError reports bad input. Msg is shown to the user as is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(msg string) error { return &ValidationError{Msg: msg} }
