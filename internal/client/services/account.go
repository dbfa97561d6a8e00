package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/notekeeper/internal/client/api"
	"github.com/dmitrijs2005/notekeeper/internal/client/models"
	"github.com/dmitrijs2005/notekeeper/internal/common"
)

// VerificationCodeLength is the length of the e-mail verification code.
const VerificationCodeLength = 6

// AccountBackend is the subset of *api.Client used by AccountService.
type AccountBackend interface {
	About(ctx context.Context, token string) *api.Response
	VerifyEmail(ctx context.Context, code string) *api.Response
	ResendVerification(ctx context.Context, email string) *api.Response
	ForgotPassword(ctx context.Context, email string) *api.Response
	ResetPassword(ctx context.Context, resetToken, password string) *api.Response
}

// AccountService covers the profile screen and the account flows that run
// without a session (e-mail verification, password reset).
type AccountService interface {
	Profile(ctx context.Context) (api.Payload, error)
	Stats(ctx context.Context) (models.Stats, error)
	VerifyEmail(ctx context.Context, code string) (string, error)
	ResendVerification(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, password, confirm string) error
}

type accountService struct {
	auth    Authenticator
	backend AccountBackend
	notes   NotesService
}

func NewAccountService(auth Authenticator, backend AccountBackend, notes NotesService) AccountService {
	return &accountService{auth: auth, backend: backend, notes: notes}
}

// Profile returns the account record: the "admin" object when present, then
// "user", then the whole reply.
func (s *accountService) Profile(ctx context.Context) (api.Payload, error) {
	resp := s.auth.Do(ctx, func(ctx context.Context, token string) *api.Response {
		return s.backend.About(ctx, token)
	})
	if err := fromResponse(api.EndpointAbout, resp, "Failed to load profile"); err != nil {
		return nil, err
	}

	for _, key := range []string{"admin", common.FieldUser} {
		if m, ok := resp.Data[key].(map[string]any); ok {
			return api.Payload(m), nil
		}
	}
	return resp.Data, nil
}

// Stats counts folders and sums their note counts.
func (s *accountService) Stats(ctx context.Context) (models.Stats, error) {
	folders, err := s.notes.ListFolders(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	st := models.Stats{Folders: len(folders)}
	for _, f := range folders {
		st.Notes += f.NoteCount
	}
	return st, nil
}

// VerifyEmail confirms an address with the code sent by e-mail and returns
// the backend's confirmation text.
func (s *accountService) VerifyEmail(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if utf8.RuneCountInString(code) != VerificationCodeLength {
		return "", ErrCodeFormat
	}

	resp := s.backend.VerifyEmail(ctx, code)
	if err := fromResponse(api.EndpointVerifyEmail, resp, "Invalid or expired code"); err != nil {
		return "", err
	}
	return resp.Data.Message("Email verified"), nil
}

func (s *accountService) ResendVerification(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}

	resp := s.backend.ResendVerification(ctx, email)
	return fromResponse(api.EndpointResendVerification, resp, "Failed to resend code")
}

func (s *accountService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}

	resp := s.backend.ForgotPassword(ctx, email)
	return resetError(api.EndpointForgotPassword, resp, "Failed to send reset code")
}

// ResetPassword checks the new password locally before sending it.
func (s *accountService) ResetPassword(ctx context.Context, resetToken, password, confirm string) error {
	resetToken = strings.TrimSpace(resetToken)
	switch {
	case resetToken == "":
		return ErrTokenRequired
	case strings.TrimSpace(password) == "" || strings.TrimSpace(confirm) == "":
		return ErrPasswordRequired
	case password != confirm:
		return ErrPasswordsMismatch
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return ErrPasswordTooShort
	}

	resp := s.backend.ResetPassword(ctx, resetToken, password)
	return resetError(api.EndpointResetPassword, resp, "Failed to reset password")
}

// resetError is stricter than fromResponse: the password reset endpoints
// must also answer with a 2xx status, and report problems in "error".
func resetError(endpoint string, resp *api.Response, fallback string) error {
	if resp.OK && resp.Succeeded() {
		return nil
	}
	if resp.StatusCode == 0 {
		return ErrUnavailable
	}

	msg := resp.Data.String(common.FieldError)
	if msg == "" {
		msg = resp.Data.Message(fallback)
	}
	return &api.Error{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: msg}
}
