package refreshtokens

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/devserver/models"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/repositories"
)

type MemoryRepository struct {
	mu     sync.Mutex
	tokens map[string]models.RefreshToken
	now    func() time.Time
}

func NewMemoryRepository(now func() time.Time) *MemoryRepository {
	if now == nil {
		now = time.Now
	}
	return &MemoryRepository{tokens: make(map[string]models.RefreshToken), now: now}
}

func (r *MemoryRepository) Create(_ context.Context, userID string, token string, validity time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[token]; ok {
		return repositories.ErrAlreadyExists
	}
	now := r.now()
	r.tokens[token] = models.RefreshToken{UserID: userID, Token: token, Expires: now.Add(validity), CreatedAt: now}
	return nil
}

func (r *MemoryRepository) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[token]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &t, nil
}

func (r *MemoryRepository) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, token)
	return nil
}

func (r *MemoryRepository) DeleteForUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

type MemoryCodeRepository struct {
	mu     sync.Mutex
	codes  map[string]models.OneTimeCode
	byUser map[string]string
	now    func() time.Time
}

func NewMemoryCodeRepository(now func() time.Time) *MemoryCodeRepository {
	if now == nil {
		now = time.Now
	}
	return &MemoryCodeRepository{
		codes:  make(map[string]models.OneTimeCode),
		byUser: make(map[string]string),
		now:    now,
	}
}

func (r *MemoryCodeRepository) Issue(_ context.Context, userID, code string, validity time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.codes[code]; ok {
		return repositories.ErrAlreadyExists
	}
	if prev, ok := r.byUser[userID]; ok {
		delete(r.codes, prev)
	}
	r.codes[code] = models.OneTimeCode{UserID: userID, Code: code, Expires: r.now().Add(validity)}
	r.byUser[userID] = code
	return nil
}

func (r *MemoryCodeRepository) Consume(_ context.Context, code string) (*models.OneTimeCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.codes[code]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	delete(r.codes, code)
	delete(r.byUser, c.UserID)

	if !r.now().Before(c.Expires) {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}
