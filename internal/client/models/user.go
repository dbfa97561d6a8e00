// Package models defines the client-side data types: the signed-in user,
// the persisted session record, folders and notes.
package models

import (
	"encoding/json"
	"fmt"
	"maps"
)

// User is the identity returned by the backend on login. Username and Email
// are always read; every other profile field is kept in Extra untouched so
// it survives a save/restore round trip.
type User struct {
	Username string
	Email    string
	Extra    map[string]any
}

func (u User) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(u.Extra)+2)
	maps.Copy(m, u.Extra)
	m["username"] = u.Username
	if u.Email != "" {
		m["email"] = u.Email
	}
	return json.Marshal(m)
}

func (u *User) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("user: expected object, got %s", string(b))
	}

	*u = User{}
	if v, ok := m["username"].(string); ok {
		u.Username = v
	}
	if v, ok := m["email"].(string); ok {
		u.Email = v
	}
	delete(m, "username")
	delete(m, "email")
	if len(m) > 0 {
		u.Extra = m
	}
	return nil
}

// Field returns a pass-through profile field as text, or "".
func (u User) Field(name string) string {
	switch name {
	case "username":
		return u.Username
	case "email":
		return u.Email
	}
	v, ok := u.Extra[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
