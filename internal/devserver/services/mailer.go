package services

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/logging"
)

// Kinds of one-time codes sent to users.
const (
	CodeVerification = "verification"
	CodeReset        = "reset"
)

// Mailer delivers one-time codes.
type Mailer interface {
	Send(ctx context.Context, kind, email, code string) error
}

// LogMailer writes codes to the log instead of sending e-mail.
type LogMailer struct {
	Log logging.Logger
}

func (m LogMailer) Send(ctx context.Context, kind, email, code string) error {
	m.Log.Info(ctx, "one-time code issued", "kind", kind, "email", email, "code", code)
	return nil
}
