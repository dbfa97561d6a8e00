package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/client/models"
)

// Notes lists the notes of one folder.
func (a *App) Notes(ctx context.Context, args []string) error {
	id, err := a.arg(args, "Enter folder ID")
	if err != nil {
		return err
	}

	notes, err := a.notes.FolderNotes(ctx, models.ID(id))
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No notes in this folder")
		return nil
	}
	for _, n := range notes {
		fmt.Fprintf(a.out, "%s\t%s\n", n.ID, n.Title)
	}
	return nil
}

func (a *App) NewNote(ctx context.Context, args []string) error {
	folderID, err := a.arg(args, "Enter folder ID")
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Enter text", a.out)
	if err != nil {
		return err
	}

	n, err := a.notes.CreateNote(ctx, models.ID(folderID), title, body)
	if err != nil {
		return err
	}
	if n.ID != "" {
		fmt.Fprintf(a.out, "Note created: %s\n", n.ID)
	} else {
		fmt.Fprintln(a.out, "Note created")
	}
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.arg(args, "Enter note ID")
	if err != nil {
		return err
	}

	n, err := a.notes.GetNote(ctx, models.ID(id))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Title: %s\n", n.Title)
	if n.UpdatedAt != "" {
		fmt.Fprintf(a.out, "Updated: %s\n", n.UpdatedAt)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, n.Body)
	return nil
}

// Edit asks for a new title and text. Leaving either empty keeps it.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.arg(args, "Enter note ID")
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "New title (empty to keep)", a.out)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "New text (empty to keep)", a.out)
	if err != nil {
		return err
	}

	var changes models.NoteChanges
	if title != "" {
		changes.Title = &title
	}
	if body != "" {
		changes.Body = &body
	}

	if err := a.notes.EditNote(ctx, models.ID(id), changes); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Note saved")
	return nil
}

func (a *App) RemoveNote(ctx context.Context, args []string) error {
	id, err := a.arg(args, "Enter note ID")
	if err != nil {
		return err
	}
	if err := a.notes.DeleteNote(ctx, models.ID(id)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Note deleted")
	return nil
}
