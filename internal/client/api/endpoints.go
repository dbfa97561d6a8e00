package api

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/notekeeper/internal/client/models"
	"github.com/dmitrijs2005/notekeeper/internal/common"
)

// Endpoint names, relative to the base URL.
const (
	EndpointSignup             = "signup"
	EndpointLogin              = "login"
	EndpointLogout             = "logout"
	EndpointRefresh            = "refresh"
	EndpointAbout              = "about"
	EndpointVerifyEmail        = "verifyemail"
	EndpointResendVerification = "resendverification"
	EndpointForgotPassword     = "forgotpassword"
	EndpointResetPassword      = "resetpassword"

	EndpointFolderCreate = "foldercreate"
	EndpointFolderList   = "folderlist"
	EndpointFolderRename = "folderrename"
	EndpointFolderDelete = "folderdelete"
	EndpointFolderNotes  = "foldernotes"

	EndpointNoteCreate = "notecreate"
	EndpointNoteGet    = "noteget"
	EndpointNoteEdit   = "noteedit"
	EndpointNoteDelete = "notedelete"
)

// Session lifecycle. These never carry an access token except Logout.

func (c *Client) Signup(ctx context.Context, username, password, email, phone string) *Response {
	return c.Post(ctx, EndpointSignup, url.Values{
		"username": {username},
		"password": {password},
		"email":    {email},
		"phone":    {phone},
	}, "")
}

func (c *Client) Login(ctx context.Context, username, password string) *Response {
	return c.Post(ctx, EndpointLogin, url.Values{
		"username": {username},
		"password": {password},
	}, "")
}

func (c *Client) Logout(ctx context.Context, token string) *Response {
	return c.Post(ctx, EndpointLogout, nil, token)
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) *Response {
	return c.Post(ctx, EndpointRefresh, url.Values{common.FieldRefreshToken: {refreshToken}}, "")
}

// Account flows that work without a session.

func (c *Client) VerifyEmail(ctx context.Context, code string) *Response {
	return c.Post(ctx, EndpointVerifyEmail, url.Values{"token": {code}}, "")
}

func (c *Client) ResendVerification(ctx context.Context, email string) *Response {
	return c.Post(ctx, EndpointResendVerification, url.Values{"email": {email}}, "")
}

func (c *Client) ForgotPassword(ctx context.Context, email string) *Response {
	return c.Post(ctx, EndpointForgotPassword, url.Values{"email": {email}}, "")
}

func (c *Client) ResetPassword(ctx context.Context, resetToken, password string) *Response {
	return c.Post(ctx, EndpointResetPassword, url.Values{
		"token":    {resetToken},
		"password": {password},
	}, "")
}

// Authenticated operations. Feature code reaches these only through the
// session manager, which supplies token.

func (c *Client) About(ctx context.Context, token string) *Response {
	return c.Post(ctx, EndpointAbout, nil, token)
}

func (c *Client) CreateFolder(ctx context.Context, name, token string) *Response {
	return c.Post(ctx, EndpointFolderCreate, url.Values{"name": {name}}, token)
}

func (c *Client) ListFolders(ctx context.Context, token string) *Response {
	return c.Post(ctx, EndpointFolderList, nil, token)
}

func (c *Client) RenameFolder(ctx context.Context, id models.ID, name, token string) *Response {
	return c.Post(ctx, EndpointFolderRename, url.Values{"id": {id.String()}, "name": {name}}, token)
}

func (c *Client) DeleteFolder(ctx context.Context, id models.ID, token string) *Response {
	return c.Post(ctx, EndpointFolderDelete, url.Values{"id": {id.String()}}, token)
}

func (c *Client) FolderNotes(ctx context.Context, id models.ID, token string) *Response {
	return c.Post(ctx, EndpointFolderNotes, url.Values{"id": {id.String()}}, token)
}

func (c *Client) CreateNote(ctx context.Context, title, body string, folderID models.ID, token string) *Response {
	return c.Post(ctx, EndpointNoteCreate, url.Values{
		"title":     {title},
		"body":      {body},
		"folder_id": {folderID.String()},
	}, token)
}

func (c *Client) GetNote(ctx context.Context, id models.ID, token string) *Response {
	return c.Post(ctx, EndpointNoteGet, url.Values{"id": {id.String()}}, token)
}

// EditNote sends only the fields present in changes.
func (c *Client) EditNote(ctx context.Context, id models.ID, changes models.NoteChanges, token string) *Response {
	form := url.Values{"id": {id.String()}}
	if changes.Title != nil {
		form.Set("title", *changes.Title)
	}
	if changes.Body != nil {
		form.Set("body", *changes.Body)
	}
	return c.Post(ctx, EndpointNoteEdit, form, token)
}

func (c *Client) DeleteNote(ctx context.Context, id models.ID, token string) *Response {
	return c.Post(ctx, EndpointNoteDelete, url.Values{"id": {id.String()}}, token)
}
