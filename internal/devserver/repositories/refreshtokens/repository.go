// Package refreshtokens declares the contract for issuing, looking up and
// revoking refresh tokens, plus the one-time codes used by the e-mail and
// password reset flows.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/devserver/models"
)

type Repository interface {
	// Create stores token for userID, expiring at now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns repositories.ErrNotFound for an unknown token.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is a no-op for an unknown token.
	Delete(ctx context.Context, token string) error

	// DeleteForUser revokes every token of userID.
	DeleteForUser(ctx context.Context, userID string) error
}

// CodeRepository keeps one-time codes of a single purpose. Issuing a new
// code for a user replaces the previous one.
type CodeRepository interface {
	Issue(ctx context.Context, userID, code string, validity time.Duration) error
	// Consume removes and returns the code. Unknown codes are
	// repositories.ErrNotFound; expired ones are removed and reported the same.
	Consume(ctx context.Context, code string) (*models.OneTimeCode, error)
}
