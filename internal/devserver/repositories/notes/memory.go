package notes

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/devserver/models"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/repositories"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu      sync.RWMutex
	folders map[string]*models.Folder
	notes   map[string]*models.Note
	now     func() time.Time
}

func NewMemoryRepository(now func() time.Time) *MemoryRepository {
	if now == nil {
		now = time.Now
	}
	return &MemoryRepository{
		folders: make(map[string]*models.Folder),
		notes:   make(map[string]*models.Note),
		now:     now,
	}
}

func (r *MemoryRepository) CreateFolder(_ context.Context, userID, name string) (*models.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := &models.Folder{ID: uuid.NewString(), UserID: userID, Name: name, CreatedAt: r.now()}
	r.folders[f.ID] = f

	out := *f
	return &out, nil
}

// ListFolders returns the user's folders oldest first, with note counts.
func (r *MemoryRepository) ListFolders(_ context.Context, userID string) ([]models.Folder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Folder{}
	for _, f := range r.folders {
		if f.UserID == userID {
			c := *f
			c.NoteCount = r.countNotes(f.ID)
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) GetFolder(_ context.Context, userID, id string) (*models.Folder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.folders[id]
	if !ok || f.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	out := *f
	out.NoteCount = r.countNotes(id)
	return &out, nil
}

func (r *MemoryRepository) RenameFolder(_ context.Context, userID, id, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.folders[id]
	if !ok || f.UserID != userID {
		return repositories.ErrNotFound
	}
	f.Name = name
	return nil
}

func (r *MemoryRepository) DeleteFolder(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.folders[id]
	if !ok || f.UserID != userID {
		return repositories.ErrNotFound
	}
	for nid, n := range r.notes {
		if n.FolderID == id {
			delete(r.notes, nid)
		}
	}
	delete(r.folders, id)
	return nil
}

// CreateNote requires the folder to exist and belong to the note's user.
func (r *MemoryRepository) CreateNote(_ context.Context, note *models.Note) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.folders[note.FolderID]
	if !ok || f.UserID != note.UserID {
		return nil, repositories.ErrNotFound
	}

	n := *note
	n.ID = uuid.NewString()
	n.CreatedAt = r.now()
	n.UpdatedAt = n.CreatedAt
	r.notes[n.ID] = &n

	out := n
	return &out, nil
}

// ListNotes returns the notes of a folder, most recently updated first.
func (r *MemoryRepository) ListNotes(_ context.Context, userID, folderID string) ([]models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.folders[folderID]
	if !ok || f.UserID != userID {
		return nil, repositories.ErrNotFound
	}

	out := []models.Note{}
	for _, n := range r.notes {
		if n.FolderID == folderID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) GetNote(_ context.Context, userID, id string) (*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	out := *n
	return &out, nil
}

// UpdateNote stores title and body and bumps UpdatedAt.
func (r *MemoryRepository) UpdateNote(_ context.Context, note *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[note.ID]
	if !ok || n.UserID != note.UserID {
		return repositories.ErrNotFound
	}
	n.Title = note.Title
	n.Body = note.Body
	n.UpdatedAt = r.now()
	return nil
}

func (r *MemoryRepository) DeleteNote(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return repositories.ErrNotFound
	}
	delete(r.notes, id)
	return nil
}

func (r *MemoryRepository) countNotes(folderID string) int {
	c := 0
	for _, n := range r.notes {
		if n.FolderID == folderID {
			c++
		}
	}
	return c
}
