// Package models holds the records kept by the development backend.
package models

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	Phone        string
	PasswordHash []byte
	Verified     bool
	CreatedAt    time.Time
}

// Public is the user as the API shows it.
func (u *User) Public() map[string]any {
	return map[string]any{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"phone":      u.Phone,
		"verified":   u.Verified,
		"created_at": u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type RefreshToken struct {
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}

// OneTimeCode is an e-mail verification code or a password reset token.
type OneTimeCode struct {
	UserID  string
	Code    string
	Expires time.Time
}

type Folder struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	NoteCount int       `json:"note_count"`
	CreatedAt time.Time `json:"created_at"`
}

type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	FolderID  string    `json:"folder_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
