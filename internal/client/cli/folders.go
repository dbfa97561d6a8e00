package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/client/models"
)

func (a *App) Folders(ctx context.Context) error {
	folders, err := a.notes.ListFolders(ctx)
	if err != nil {
		return err
	}
	if len(folders) == 0 {
		fmt.Fprintln(a.out, "No folders yet, create one with mkfolder")
		return nil
	}
	for _, f := range folders {
		fmt.Fprintf(a.out, "%s\t%s\t(%d notes)\n", f.ID, f.Name, f.NoteCount)
	}
	return nil
}

// MakeFolder creates a folder named by the arguments, or by the prompt.
func (a *App) MakeFolder(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		var err error
		if name, err = getSimpleText(a.reader, "Enter folder name", a.out); err != nil {
			return err
		}
	}

	f, err := a.notes.CreateFolder(ctx, name)
	if err != nil {
		return err
	}
	if f.ID != "" {
		fmt.Fprintf(a.out, "Folder created: %s\n", f.ID)
	} else {
		fmt.Fprintln(a.out, "Folder created")
	}
	return nil
}

// RenameFolder takes the folder id and optionally the new name as arguments.
func (a *App) RenameFolder(ctx context.Context, args []string) error {
	id, err := a.arg(args, "Enter folder ID")
	if err != nil {
		return err
	}

	var name string
	if len(args) > 1 {
		name = strings.Join(args[1:], " ")
	} else if name, err = getSimpleText(a.reader, "Enter new name", a.out); err != nil {
		return err
	}

	if err := a.notes.RenameFolder(ctx, models.ID(id), name); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Folder renamed")
	return nil
}

// RemoveFolder deletes a folder and every note in it.
func (a *App) RemoveFolder(ctx context.Context, args []string) error {
	id, err := a.arg(args, "Enter folder ID")
	if err != nil {
		return err
	}
	if err := a.notes.DeleteFolder(ctx, models.ID(id)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Folder deleted")
	return nil
}
