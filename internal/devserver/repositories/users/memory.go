package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/devserver/models"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/repositories"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*models.User)}
}

// Create assigns an ID and creation time. Username and e-mail must be unique.
func (r *MemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if strings.EqualFold(u.Username, user.Username) {
			return nil, repositories.ErrAlreadyExists
		}
		if user.Email != "" && strings.EqualFold(u.Email, user.Email) {
			return nil, repositories.ErrAlreadyExists
		}
	}

	u := *user
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	r.byID[u.ID] = &u

	out := u
	return &out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *MemoryRepository) GetByLogin(_ context.Context, login string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return strings.EqualFold(u.Username, login) })
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, repositories.ErrNotFound
	}
	return r.find(func(u *models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *MemoryRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	u := *user
	r.byID[u.ID] = &u
	return nil
}

func (r *MemoryRepository) find(match func(*models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if match(u) {
			out := *u
			return &out, nil
		}
	}
	return nil, repositories.ErrNotFound
}
