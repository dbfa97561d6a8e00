package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/notekeeper/internal/client/api"
	"github.com/dmitrijs2005/notekeeper/internal/client/models"
	"github.com/dmitrijs2005/notekeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
)

// StorageKey is the metadata key holding the serialized session.
const StorageKey = "session"

type State int

const (
	StateInitializing State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Remote is the part of the backend the manager drives itself.
// *api.Client implements it.
type Remote interface {
	Login(ctx context.Context, username, password string) *api.Response
	Signup(ctx context.Context, username, password, email, phone string) *api.Response
	Logout(ctx context.Context, token string) *api.Response
	Refresh(ctx context.Context, refreshToken string) *api.Response
}

// Operation is one remote call made with the given access token.
type Operation func(ctx context.Context, token string) *api.Response

type Manager struct {
	remote Remote
	store  metadata.Repository
	log    logging.Logger

	mu           sync.RWMutex
	state        State
	user         *models.User
	accessToken  string
	refreshToken string
}

// New returns a manager in StateInitializing; call Restore before use.
func New(remote Remote, store metadata.Repository, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{
		remote: remote,
		store:  store,
		log:    log.With("component", "session"),
		state:  StateInitializing,
	}
}

// Restore loads the persisted session. Any problem with the stored record
// (missing, unreadable, corrupt, incomplete) yields StateUnauthenticated.
// Only the first call does anything.
func (m *Manager) Restore(ctx context.Context) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateInitializing {
		return m.state
	}
	m.state = StateUnauthenticated

	raw, err := m.store.Get(ctx, StorageKey)
	if err != nil {
		m.log.Warn(ctx, "session storage unreadable", "err", err)
		return m.state
	}
	if raw == nil {
		return m.state
	}

	s, err := models.ParseSession(raw)
	if err != nil {
		m.log.Warn(ctx, "ignoring stored session", "err", err)
		return m.state
	}

	m.user = s.User
	m.accessToken = s.AccessToken
	m.refreshToken = s.RefreshToken
	m.state = StateAuthenticated
	m.log.Info(ctx, "session restored", "user", s.User.Username)
	return m.state
}

// SignIn logs in and, on success, persists the new session.
func (m *Manager) SignIn(ctx context.Context, identifier, secret string) Result {
	resp := m.remote.Login(ctx, identifier, secret)
	if !resp.Succeeded() {
		m.log.Info(ctx, "sign in rejected", "status", resp.StatusCode)
		return failure(resp, MsgLoginFailed)
	}

	var user models.User
	if err := resp.Data.Decode(common.FieldUser, &user); err != nil {
		m.log.Warn(ctx, "login reply without usable user", "err", err)
		return failure(resp, MsgLoginFailed)
	}
	access := resp.Data.String(common.FieldAccessToken)
	if access == "" {
		m.log.Warn(ctx, "login reply without access token")
		return failure(resp, MsgLoginFailed)
	}
	s := &models.Session{
		User:         &user,
		AccessToken:  access,
		RefreshToken: resp.Data.String(common.FieldRefreshToken),
	}

	m.mu.Lock()
	m.user = s.User
	m.accessToken = s.AccessToken
	m.refreshToken = s.RefreshToken
	m.state = StateAuthenticated
	m.mu.Unlock()

	m.persist(ctx, s)
	m.log.Info(ctx, "signed in", "user", user.Username)

	return Result{Succeeded: true, StatusCode: resp.StatusCode, Payload: resp.Data}
}

// SignUp registers an account. It never touches the current session.
func (m *Manager) SignUp(ctx context.Context, identifier, secret, email, phone string) Result {
	resp := m.remote.Signup(ctx, identifier, secret, email, phone)
	if !resp.Succeeded() {
		return failure(resp, MsgSignupFailed)
	}
	return Result{
		Succeeded:  true,
		StatusCode: resp.StatusCode,
		Message:    resp.Data.String(common.FieldMessage),
		Payload:    resp.Data,
	}
}

// SignOut tells the backend (best effort) and forgets the session locally.
// It always ends in StateUnauthenticated and is safe to repeat.
func (m *Manager) SignOut(ctx context.Context) {
	token := m.AccessToken()
	if token != "" {
		if resp := m.remote.Logout(ctx, token); !resp.Succeeded() {
			m.log.Debug(ctx, "remote logout failed, continuing", "status", resp.StatusCode)
		}
	}
	m.clear(ctx)
	m.log.Info(ctx, "signed out")
}

// Do runs op with the current access token. On a 401 it refreshes once and
// retries once; if refreshing is not possible the first reply is returned.
func (m *Manager) Do(ctx context.Context, op Operation) *api.Response {
	resp := op(ctx, m.AccessToken())
	if !resp.Unauthorized() {
		return resp
	}

	token, ok := m.refreshSession(ctx)
	if !ok {
		return resp
	}
	return op(ctx, token)
}

// refreshSession trades the refresh token for a new access token. Without
// a refresh token it does nothing; when the backend refuses, the session is
// destroyed.
func (m *Manager) refreshSession(ctx context.Context) (string, bool) {
	m.mu.RLock()
	refreshToken := m.refreshToken
	m.mu.RUnlock()

	if refreshToken == "" {
		return "", false
	}

	resp := m.remote.Refresh(ctx, refreshToken)
	access := resp.Data.String(common.FieldAccessToken)
	if !resp.Succeeded() || access == "" {
		m.log.Warn(ctx, "token refresh failed, signing out", "status", resp.StatusCode)
		m.clear(ctx)
		return "", false
	}
	rotated := resp.Data.String(common.FieldRefreshToken)

	m.mu.Lock()
	m.accessToken = access
	if rotated != "" {
		m.refreshToken = rotated
	}
	m.mu.Unlock()

	m.mergeTokens(ctx, access, rotated)
	m.log.Info(ctx, "token refreshed", "rotated", rotated != "")
	return access, true
}

// mergeTokens rewrites the tokens of the stored record and keeps its other
// fields. Without a usable record a fresh one is written from memory.
func (m *Manager) mergeTokens(ctx context.Context, access, rotated string) {
	raw, err := m.store.Get(ctx, StorageKey)
	if err != nil {
		m.log.Warn(ctx, "session storage unreadable", "err", err)
		return
	}

	var record map[string]json.RawMessage
	if raw == nil || json.Unmarshal(raw, &record) != nil || record == nil {
		m.persist(ctx, m.snapshot())
		return
	}

	record["accessToken"], _ = json.Marshal(access)
	if rotated != "" {
		record["refreshToken"], _ = json.Marshal(rotated)
	}
	b, err := json.Marshal(record)
	if err != nil {
		m.log.Error(ctx, "session encode failed", "err", err)
		return
	}
	if err := m.store.Set(ctx, StorageKey, b); err != nil {
		m.log.Error(ctx, "session save failed", "err", err)
	}
}

func (m *Manager) persist(ctx context.Context, s *models.Session) {
	b, err := s.Marshal()
	if err != nil {
		m.log.Error(ctx, "session encode failed", "err", err)
		return
	}
	if err := m.store.Set(ctx, StorageKey, b); err != nil {
		m.log.Error(ctx, "session save failed", "err", err)
	}
}

func (m *Manager) clear(ctx context.Context) {
	m.mu.Lock()
	m.user = nil
	m.accessToken = ""
	m.refreshToken = ""
	m.state = StateUnauthenticated
	m.mu.Unlock()

	if err := m.store.Delete(ctx, StorageKey); err != nil {
		m.log.Error(ctx, "session delete failed", "err", err)
	}
}

func (m *Manager) snapshot() *models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &models.Session{User: m.user, AccessToken: m.accessToken, RefreshToken: m.refreshToken}
}

// User returns a copy of the signed-in user, or nil.
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// Loading is true until Restore has run.
func (m *Manager) Loading() bool {
	return m.State() == StateInitializing
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// AccessToken is exposed for diagnostics (token expiry display). Feature
// code must go through Do.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.accessToken
}
