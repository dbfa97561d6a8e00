package devserver_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/client/api"
	"github.com/dmitrijs2005/notekeeper/internal/client/models"
	"github.com/dmitrijs2005/notekeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/notekeeper/internal/client/services"
	"github.com/dmitrijs2005/notekeeper/internal/client/session"
	"github.com/dmitrijs2005/notekeeper/internal/devserver"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/config"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type mailbox struct {
	mu    sync.Mutex
	codes map[string]string
}

func (m *mailbox) Send(_ context.Context, kind, email, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[kind+":"+email] = code
	return nil
}

func (m *mailbox) code(kind, email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codes[kind+":"+email]
}

type env struct {
	srv    *httptest.Server
	api    *api.Client
	store  *metadata.MemoryRepository
	sess   *session.Manager
	notes  services.NotesService
	clock  *clock
	mail   *mailbox
	config *config.Config
}

func newEnv(t *testing.T) *env {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.RequireVerification = true

	c := &clock{t: time.Now()}
	mail := &mailbox{codes: map[string]string{}}
	app := devserver.NewApp(cfg, logging.Nop(), mail, c.Now)

	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, 5*time.Second, nil)
	store := metadata.NewMemoryRepository()
	sess := session.New(client, store, nil)
	sess.Restore(context.Background())

	return &env{
		srv:    srv,
		api:    client,
		store:  store,
		sess:   sess,
		notes:  services.NewNotesService(sess, client),
		clock:  c,
		mail:   mail,
		config: cfg,
	}
}

func (e *env) signedIn(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	res := e.sess.SignUp(ctx, "alice", "secret1", "alice@example.org", "")
	require.True(t, res.Succeeded, res.Message)

	resp := e.api.VerifyEmail(ctx, e.mail.code("verification", "alice@example.org"))
	require.True(t, resp.Succeeded())

	res = e.sess.SignIn(ctx, "alice", "secret1")
	require.True(t, res.Succeeded, res.Message)
}

func TestEndToEnd_SignUpVerifySignIn(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res := e.sess.SignUp(ctx, "alice", "secret1", "alice@example.org", "+100")
	require.True(t, res.Succeeded)
	assert.Contains(t, res.Message, "verification code")

	res = e.sess.SignIn(ctx, "alice", "secret1")
	require.False(t, res.Succeeded)
	assert.Equal(t, "Please verify your email first", res.Message)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	resp := e.api.VerifyEmail(ctx, e.mail.code("verification", "alice@example.org"))
	require.True(t, resp.Succeeded())

	res = e.sess.SignIn(ctx, "alice", "wrong!")
	assert.Equal(t, "Invalid username or password", res.Message)

	res = e.sess.SignIn(ctx, "alice", "secret1")
	require.True(t, res.Succeeded)
	assert.Equal(t, "alice", e.sess.User().Username)
	assert.Equal(t, "+100", e.sess.User().Field("phone"))

	raw, err := e.store.Get(ctx, session.StorageKey)
	require.NoError(t, err)
	s, err := models.ParseSession(raw)
	require.NoError(t, err)
	assert.Equal(t, e.sess.AccessToken(), s.AccessToken)
	assert.NotEmpty(t, s.RefreshToken)
}

func TestEndToEnd_TransparentRefresh(t *testing.T) {
	e := newEnv(t)
	e.signedIn(t)
	ctx := context.Background()

	folder, err := e.notes.CreateFolder(ctx, "Work")
	require.NoError(t, err)
	_, err = e.notes.CreateNote(ctx, folder.ID, "Plan", "step one")
	require.NoError(t, err)

	before, err := e.store.Get(ctx, session.StorageKey)
	require.NoError(t, err)
	oldAccess := e.sess.AccessToken()

	e.clock.Advance(e.config.AccessTokenValidityDuration + time.Second)

	folders, err := e.notes.ListFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, 1, folders[0].NoteCount)

	assert.True(t, e.sess.IsAuthenticated())
	assert.NotEqual(t, oldAccess, e.sess.AccessToken())

	after, err := e.store.Get(ctx, session.StorageKey)
	require.NoError(t, err)
	oldRec, err := models.ParseSession(before)
	require.NoError(t, err)
	newRec, err := models.ParseSession(after)
	require.NoError(t, err)
	assert.Equal(t, e.sess.AccessToken(), newRec.AccessToken)
	assert.NotEqual(t, oldRec.RefreshToken, newRec.RefreshToken, "refresh token rotated")
	assert.Equal(t, "alice", newRec.User.Username)
}

func TestEndToEnd_RefreshTokenExpiredSignsOut(t *testing.T) {
	e := newEnv(t)
	e.signedIn(t)
	ctx := context.Background()

	e.clock.Advance(e.config.RefreshTokenValidityDuration + time.Second)

	_, err := e.notes.ListFolders(ctx)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	assert.False(t, e.sess.IsAuthenticated())

	raw, err := e.store.Get(ctx, session.StorageKey)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestEndToEnd_SignOutRevokesRefresh(t *testing.T) {
	e := newEnv(t)
	e.signedIn(t)
	ctx := context.Background()

	raw, err := e.store.Get(ctx, session.StorageKey)
	require.NoError(t, err)
	rec, err := models.ParseSession(raw)
	require.NoError(t, err)

	e.sess.SignOut(ctx)
	assert.False(t, e.sess.IsAuthenticated())

	resp := e.api.Refresh(ctx, rec.RefreshToken)
	assert.False(t, resp.Succeeded())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEndToEnd_RestartKeepsSession(t *testing.T) {
	e := newEnv(t)
	e.signedIn(t)
	ctx := context.Background()

	restarted := session.New(e.api, e.store, nil)
	require.Equal(t, session.StateAuthenticated, restarted.Restore(ctx))

	notes := services.NewNotesService(restarted, e.api)
	_, err := notes.ListFolders(ctx)
	assert.NoError(t, err)
}

func TestEndToEnd_NotesCRUD(t *testing.T) {
	e := newEnv(t)
	e.signedIn(t)
	ctx := context.Background()

	folder, err := e.notes.CreateFolder(ctx, "Work")
	require.NoError(t, err)
	require.NoError(t, e.notes.RenameFolder(ctx, folder.ID, "Office"))

	n, err := e.notes.CreateNote(ctx, folder.ID, "Plan", "step one")
	require.NoError(t, err)

	body := "step two"
	require.NoError(t, e.notes.EditNote(ctx, n.ID, models.NoteChanges{Body: &body}))

	got, err := e.notes.GetNote(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "Plan", got.Title)
	assert.Equal(t, "step two", got.Body)

	list, err := e.notes.FolderNotes(ctx, folder.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, e.notes.DeleteNote(ctx, n.ID))
	_, err = e.notes.GetNote(ctx, n.ID)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Note not found", apiErr.Message)

	require.NoError(t, e.notes.DeleteFolder(ctx, folder.ID))
	folders, err := e.notes.ListFolders(ctx)
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestEndToEnd_PasswordReset(t *testing.T) {
	e := newEnv(t)
	e.signedIn(t)
	ctx := context.Background()

	account := services.NewAccountService(e.sess, e.api, e.notes)
	require.NoError(t, account.ForgotPassword(ctx, "alice@example.org"))

	token := e.mail.code("reset", "alice@example.org")
	require.NotEmpty(t, token)
	require.NoError(t, account.ResetPassword(ctx, token, "new-secret", "new-secret"))

	e.sess.SignOut(ctx)
	assert.False(t, e.sess.SignIn(ctx, "alice", "secret1").Succeeded)
	assert.True(t, e.sess.SignIn(ctx, "alice", "new-secret").Succeeded)

	profile, err := account.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.String("username"))
	assert.Equal(t, true, profile["verified"])
}

func TestWire_Errors(t *testing.T) {
	e := newEnv(t)

	resp := e.api.ListFolders(context.Background(), "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "FAILED", resp.Data.Status())

	resp = e.api.ListFolders(context.Background(), "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = e.api.Post(context.Background(), "nosuchthing", url.Values{}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	get, err := http.Get(e.srv.URL + "/login")
	require.NoError(t, err)
	defer get.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, get.StatusCode)
}

func TestServe_StopsOnCancel(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	app := devserver.NewApp(cfg, logging.Nop(), nil, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
