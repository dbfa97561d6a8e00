package repomanager

import (
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/devserver/repositories/notes"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/repositories/refreshtokens"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	RefreshTokens() refreshtokens.Repository
	VerificationCodes() refreshtokens.CodeRepository
	ResetTokens() refreshtokens.CodeRepository
	Notes() notes.Repository
}

type InMemoryRepositoryManager struct {
	users             users.Repository
	refreshTokens     refreshtokens.Repository
	verificationCodes refreshtokens.CodeRepository
	resetTokens       refreshtokens.CodeRepository
	notes             notes.Repository
}

// NewInMemoryRepositoryManager builds empty stores sharing one clock.
func NewInMemoryRepositoryManager(now func() time.Time) *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:             users.NewMemoryRepository(),
		refreshTokens:     refreshtokens.NewMemoryRepository(now),
		verificationCodes: refreshtokens.NewMemoryCodeRepository(now),
		resetTokens:       refreshtokens.NewMemoryCodeRepository(now),
		notes:             notes.NewMemoryRepository(now),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *InMemoryRepositoryManager) RefreshTokens() refreshtokens.Repository { return m.refreshTokens }

func (m *InMemoryRepositoryManager) VerificationCodes() refreshtokens.CodeRepository {
	return m.verificationCodes
}

func (m *InMemoryRepositoryManager) ResetTokens() refreshtokens.CodeRepository { return m.resetTokens }

func (m *InMemoryRepositoryManager) Notes() notes.Repository { return m.notes }
