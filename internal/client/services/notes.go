// Package services contains the application services of the notekeeper
// client. Every remote call they make goes through the session manager, so
// an expired access token is refreshed transparently.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/client/api"
	"github.com/dmitrijs2005/notekeeper/internal/client/models"
	"github.com/dmitrijs2005/notekeeper/internal/client/session"
)

// Authenticator runs a remote operation with the current access token.
// *session.Manager implements it.
type Authenticator interface {
	Do(ctx context.Context, op session.Operation) *api.Response
}

// NotesBackend is the subset of *api.Client used by NotesService.
type NotesBackend interface {
	CreateFolder(ctx context.Context, name, token string) *api.Response
	ListFolders(ctx context.Context, token string) *api.Response
	RenameFolder(ctx context.Context, id models.ID, name, token string) *api.Response
	DeleteFolder(ctx context.Context, id models.ID, token string) *api.Response
	FolderNotes(ctx context.Context, id models.ID, token string) *api.Response
	CreateNote(ctx context.Context, title, body string, folderID models.ID, token string) *api.Response
	GetNote(ctx context.Context, id models.ID, token string) *api.Response
	EditNote(ctx context.Context, id models.ID, changes models.NoteChanges, token string) *api.Response
	DeleteNote(ctx context.Context, id models.ID, token string) *api.Response
}

// NotesService manages folders and the notes inside them.
//
// Errors are ErrUnavailable when the backend could not be reached,
// ErrUnauthorized when the session could not be renewed, a validation
// error for bad input, or *api.Error carrying the backend's message.
type NotesService interface {
	ListFolders(ctx context.Context) ([]models.Folder, error)
	CreateFolder(ctx context.Context, name string) (*models.Folder, error)
	RenameFolder(ctx context.Context, id models.ID, name string) error
	DeleteFolder(ctx context.Context, id models.ID) error
	FolderNotes(ctx context.Context, folderID models.ID) ([]models.Note, error)
	CreateNote(ctx context.Context, folderID models.ID, title, body string) (*models.Note, error)
	GetNote(ctx context.Context, id models.ID) (*models.Note, error)
	EditNote(ctx context.Context, id models.ID, changes models.NoteChanges) error
	DeleteNote(ctx context.Context, id models.ID) error
}

type notesService struct {
	auth    Authenticator
	backend NotesBackend
}

func NewNotesService(auth Authenticator, backend NotesBackend) NotesService {
	return &notesService{auth: auth, backend: backend}
}

func (s *notesService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	resp := s.auth.Do(ctx, func(ctx context.Context, token string) *api.Response {
		return s.backend.ListFolders(ctx, token)
	})
	if err := fromResponse(api.EndpointFolderList, resp, "Failed to load folders"); err != nil {
		return nil, err
	}

	folders := []models.Folder{}
	if resp.Data.Has("folders") {
		if err := resp.Data.Decode("folders", &folders); err != nil {
			return nil, fmt.Errorf("folder list: %w", err)
		}
	}
	return folders, nil
}

func (s *notesService) CreateFolder(ctx context.Context, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	resp := s.auth.Do(ctx, func(ctx context.Context, token string) *api.Response {
		return s.backend.CreateFolder(ctx, name, token)
	})
	if err := fromResponse(api.EndpointFolderCreate, resp, "Failed to create folder"); err != nil {
		return nil, err
	}

	folder := &models.Folder{Name: name}
	if resp.Data.Has("folder") {
		if err := resp.Data.Decode("folder", folder); err != nil {
			return nil, fmt.Errorf("folder create: %w", err)
		}
	}
	return folder, nil
}

func (s *notesService) RenameFolder(ctx context.Context, id models.ID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}

	resp := s.auth.Do(ctx, func(ctx context.Context, token string) *api.Response {
		return s.backend.RenameFolder(ctx, id, name, token)
	})
	return fromResponse(api.EndpointFolderRename, resp, "Failed to rename folder")
}

func (s *notesService) DeleteFolder(ctx context.Context, id models.ID) error {
	resp := s.auth.Do(ctx, func(ctx context.Context, token string) *api.Response {
		return s.backend.DeleteFolder(ctx, id, token)
	})
	return fromResponse(api.EndpointFolderDelete, resp, "Failed to delete")
}

func (s *notesService) FolderNotes(ctx context.Context, folderID models.ID) ([]models.Note, error) {
	resp := s.auth.Do(ctx, func(ctx context.Context, token string) *api.Response {
		return s.backend.FolderNotes(ctx, folderID, token)
	})
	if err := fromResponse(api.EndpointFolderNotes, resp, "Failed to load notes"); err != nil {
		return nil, err
	}

	notes := []models.Note{}
	if resp.Data.Has("notes") {
		if err := resp.Data.Decode("notes", &notes); err != nil {
			return nil, fmt.Errorf("folder notes: %w", err)
		}
	}
	return notes, nil
}

func (s *notesService) CreateNote(ctx context.Context, folderID models.ID, title, body string) (*models.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	resp := s.auth.Do(ctx, func(ctx context.Context, token string) *api.Response {
		return s.backend.CreateNote(ctx, title, body, folderID, token)
	})
	if err := fromResponse(api.EndpointNoteCreate, resp, "Failed to create note"); err != nil {
		return nil, err
	}

	note := &models.Note{FolderID: folderID, Title: title, Body: body}
	if resp.Data.Has("note") {
		if err := resp.Data.Decode("note", note); err != nil {
			return nil, fmt.Errorf("note create: %w", err)
		}
	}
	return note, nil
}

func (s *notesService) GetNote(ctx context.Context, id models.ID) (*models.Note, error) {
	resp := s.auth.Do(ctx, func(ctx context.Context, token string) *api.Response {
		return s.backend.GetNote(ctx, id, token)
	})
	if err := fromResponse(api.EndpointNoteGet, resp, "Could not load note"); err != nil {
		return nil, err
	}

	var note models.Note
	if err := resp.Data.Decode("note", &note); err != nil {
		return nil, fmt.Errorf("note get: %w", err)
	}
	return &note, nil
}

func (s *notesService) EditNote(ctx context.Context, id models.ID, changes models.NoteChanges) error {
	if changes.Empty() {
		return ErrNothingToChange
	}
	if changes.Title != nil {
		t := strings.TrimSpace(*changes.Title)
		if t == "" {
			return ErrTitleRequired
		}
		changes.Title = &t
	}

	resp := s.auth.Do(ctx, func(ctx context.Context, token string) *api.Response {
		return s.backend.EditNote(ctx, id, changes, token)
	})
	return fromResponse(api.EndpointNoteEdit, resp, "Failed to save note")
}

func (s *notesService) DeleteNote(ctx context.Context, id models.ID) error {
	resp := s.auth.Do(ctx, func(ctx context.Context, token string) *api.Response {
		return s.backend.DeleteNote(ctx, id, token)
	})
	return fromResponse(api.EndpointNoteDelete, resp, "Failed to delete")
}
