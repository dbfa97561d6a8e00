package models

import (
	"encoding/json"
	"errors"
)

var ErrIncompleteSession = errors.New("session record is incomplete")

// Session is the persisted form of a signed-in session.
type Session struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ParseSession decodes a stored record. A record without a user or without
// an access token is rejected: partial state is never treated as a session.
func ParseSession(b []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	if s.User == nil || s.AccessToken == "" {
		return nil, ErrIncompleteSession
	}
	return &s, nil
}

func (s *Session) Marshal() ([]byte, error) {
	return json.Marshal(s)
}
