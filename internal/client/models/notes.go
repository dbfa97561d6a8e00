package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a backend identifier. The backend may send it as a JSON number or a
// string; both decode to the same text form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

type Folder struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	NoteCount int    `json:"note_count"`
	CreatedAt string `json:"created_at,omitempty"`
}

// UnmarshalJSON accepts note_count as a JSON number or a numeric string.
func (f *Folder) UnmarshalJSON(b []byte) error {
	type plain Folder
	aux := struct {
		*plain
		NoteCount json.Number `json:"note_count"`
	}{plain: (*plain)(f)}

	*f = Folder{}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.NoteCount == "" {
		return nil
	}
	n, err := strconv.ParseFloat(aux.NoteCount.String(), 64)
	if err != nil {
		return fmt.Errorf("folder: note_count %q: %w", aux.NoteCount, err)
	}
	f.NoteCount = int(n)
	return nil
}

type Note struct {
	ID        ID     `json:"id"`
	FolderID  ID     `json:"folder_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// NoteChanges is a partial edit; nil fields are left unchanged.
type NoteChanges struct {
	Title *string
	Body  *string
}

func (c NoteChanges) Empty() bool { return c.Title == nil && c.Body == nil }

// Stats summarises the signed-in user's content.
type Stats struct {
	Folders int
	Notes   int
}
