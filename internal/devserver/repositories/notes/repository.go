// Package notes declares storage for folders and the notes they hold. Every
// call is scoped to one user: records of other users are not found.
package notes

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/devserver/models"
)

type Repository interface {
	CreateFolder(ctx context.Context, userID, name string) (*models.Folder, error)
	ListFolders(ctx context.Context, userID string) ([]models.Folder, error)
	GetFolder(ctx context.Context, userID, id string) (*models.Folder, error)
	RenameFolder(ctx context.Context, userID, id, name string) error
	// DeleteFolder removes the folder together with its notes.
	DeleteFolder(ctx context.Context, userID, id string) error

	CreateNote(ctx context.Context, note *models.Note) (*models.Note, error)
	ListNotes(ctx context.Context, userID, folderID string) ([]models.Note, error)
	GetNote(ctx context.Context, userID, id string) (*models.Note, error)
	UpdateNote(ctx context.Context, note *models.Note) error
	DeleteNote(ctx context.Context, userID, id string) error
}
