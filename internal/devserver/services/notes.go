package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/devserver/models"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/repositories"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/repositories/repomanager"
)

// NotesService manages the folders and notes of one user at a time.
type NotesService struct {
	repomanager repomanager.RepositoryManager
}

func NewNotesService(m repomanager.RepositoryManager) *NotesService {
	return &NotesService{repomanager: m}
}

func (s *NotesService) CreateFolder(ctx context.Context, userID, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("Folder name is required")
	}
	return s.repomanager.Notes().CreateFolder(ctx, userID, name)
}

func (s *NotesService) ListFolders(ctx context.Context, userID string) ([]models.Folder, error) {
	return s.repomanager.Notes().ListFolders(ctx, userID)
}

func (s *NotesService) RenameFolder(ctx context.Context, userID, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid("Folder name is required")
	}
	return notFound(s.repomanager.Notes().RenameFolder(ctx, userID, id, name), ErrFolderNotFound)
}

func (s *NotesService) DeleteFolder(ctx context.Context, userID, id string) error {
	return notFound(s.repomanager.Notes().DeleteFolder(ctx, userID, id), ErrFolderNotFound)
}

func (s *NotesService) FolderNotes(ctx context.Context, userID, folderID string) ([]models.Note, error) {
	notes, err := s.repomanager.Notes().ListNotes(ctx, userID, folderID)
	return notes, notFound(err, ErrFolderNotFound)
}

func (s *NotesService) CreateNote(ctx context.Context, userID, folderID, title, body string) (*models.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, invalid("Title is required")
	}
	n, err := s.repomanager.Notes().CreateNote(ctx, &models.Note{
		UserID:   userID,
		FolderID: folderID,
		Title:    title,
		Body:     body,
	})
	return n, notFound(err, ErrFolderNotFound)
}

func (s *NotesService) GetNote(ctx context.Context, userID, id string) (*models.Note, error) {
	n, err := s.repomanager.Notes().GetNote(ctx, userID, id)
	return n, notFound(err, ErrNoteNotFound)
}

// EditNote changes the fields that are non-nil and returns the stored note.
func (s *NotesService) EditNote(ctx context.Context, userID, id string, title, body *string) (*models.Note, error) {
	repo := s.repomanager.Notes()

	n, err := repo.GetNote(ctx, userID, id)
	if err != nil {
		return nil, notFound(err, ErrNoteNotFound)
	}
	if title != nil {
		t := strings.TrimSpace(*title)
		if t == "" {
			return nil, invalid("Title is required")
		}
		n.Title = t
	}
	if body != nil {
		n.Body = *body
	}

	if err := repo.UpdateNote(ctx, n); err != nil {
		return nil, notFound(err, ErrNoteNotFound)
	}
	return repo.GetNote(ctx, userID, id)
}

func (s *NotesService) DeleteNote(ctx context.Context, userID, id string) error {
	return notFound(s.repomanager.Notes().DeleteNote(ctx, userID, id), ErrNoteNotFound)
}

// notFound replaces the repository's not-found error with target.
func notFound(err, target error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return target
	}
	return err
}
