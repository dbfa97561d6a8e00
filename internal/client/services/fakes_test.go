package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/notekeeper/internal/client/api"
	"github.com/dmitrijs2005/notekeeper/internal/client/models"
	"github.com/dmitrijs2005/notekeeper/internal/client/session"
)

// fakeAuth hands every operation the same token.
type fakeAuth struct {
	token string
	calls int
}

func (a *fakeAuth) Do(ctx context.Context, op session.Operation) *api.Response {
	a.calls++
	return op(ctx, a.token)
}

type call struct {
	endpoint string
	token    string
	args     []string
}

// fakeBackend answers each endpoint with a scripted reply and records the
// calls it got. Unscripted endpoints answer SUCCESS with an empty payload.
type fakeBackend struct {
	replies map[string]*api.Response
	calls   []call
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{replies: map[string]*api.Response{}}
}

func (b *fakeBackend) reply(endpoint, token string, args ...string) *api.Response {
	b.calls = append(b.calls, call{endpoint: endpoint, token: token, args: args})
	if r, ok := b.replies[endpoint]; ok {
		return r
	}
	return success(nil)
}

func (b *fakeBackend) last() call {
	if len(b.calls) == 0 {
		return call{}
	}
	return b.calls[len(b.calls)-1]
}

func success(p api.Payload) *api.Response {
	if p == nil {
		p = api.Payload{}
	}
	p["status"] = "SUCCESS"
	return &api.Response{OK: true, StatusCode: http.StatusOK, Data: p}
}

func failed(code int, p api.Payload) *api.Response {
	if p == nil {
		p = api.Payload{}
	}
	p["status"] = "FAILED"
	return &api.Response{OK: code >= 200 && code < 300, StatusCode: code, Data: p}
}

func optional(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func (b *fakeBackend) CreateFolder(_ context.Context, name, token string) *api.Response {
	return b.reply(api.EndpointFolderCreate, token, name)
}

func (b *fakeBackend) ListFolders(_ context.Context, token string) *api.Response {
	return b.reply(api.EndpointFolderList, token)
}

func (b *fakeBackend) RenameFolder(_ context.Context, id models.ID, name, token string) *api.Response {
	return b.reply(api.EndpointFolderRename, token, id.String(), name)
}

func (b *fakeBackend) DeleteFolder(_ context.Context, id models.ID, token string) *api.Response {
	return b.reply(api.EndpointFolderDelete, token, id.String())
}

func (b *fakeBackend) FolderNotes(_ context.Context, id models.ID, token string) *api.Response {
	return b.reply(api.EndpointFolderNotes, token, id.String())
}

func (b *fakeBackend) CreateNote(_ context.Context, title, body string, folderID models.ID, token string) *api.Response {
	return b.reply(api.EndpointNoteCreate, token, title, body, folderID.String())
}

func (b *fakeBackend) GetNote(_ context.Context, id models.ID, token string) *api.Response {
	return b.reply(api.EndpointNoteGet, token, id.String())
}

func (b *fakeBackend) EditNote(_ context.Context, id models.ID, changes models.NoteChanges, token string) *api.Response {
	return b.reply(api.EndpointNoteEdit, token, id.String(), optional(changes.Title), optional(changes.Body))
}

func (b *fakeBackend) DeleteNote(_ context.Context, id models.ID, token string) *api.Response {
	return b.reply(api.EndpointNoteDelete, token, id.String())
}

func (b *fakeBackend) About(_ context.Context, token string) *api.Response {
	return b.reply(api.EndpointAbout, token)
}

func (b *fakeBackend) VerifyEmail(_ context.Context, code string) *api.Response {
	return b.reply(api.EndpointVerifyEmail, "", code)
}

func (b *fakeBackend) ResendVerification(_ context.Context, email string) *api.Response {
	return b.reply(api.EndpointResendVerification, "", email)
}

func (b *fakeBackend) ForgotPassword(_ context.Context, email string) *api.Response {
	return b.reply(api.EndpointForgotPassword, "", email)
}

func (b *fakeBackend) ResetPassword(_ context.Context, resetToken, password string) *api.Response {
	return b.reply(api.EndpointResetPassword, "", resetToken, password)
}
