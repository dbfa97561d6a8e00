package users

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/devserver/models"
)

// Repository stores accounts. Lookups by username and e-mail are
// case-insensitive; a missing user is repositories.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}
