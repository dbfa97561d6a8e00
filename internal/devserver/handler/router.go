// Package handler exposes the development backend over HTTP. Every
// endpoint is a form-encoded POST to /<name> and answers JSON carrying a
// "status" of SUCCESS or FAILED.
package handler

import (
	"net/http"

	"github.com/dmitrijs2005/notekeeper/internal/devserver/services"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	users *services.UserService
	notes *services.NotesService
	log   logging.Logger
}

func New(users *services.UserService, notes *services.NotesService, log logging.Logger) *Handler {
	return &Handler{users: users, notes: notes, log: log.With("component", "http")}
}

// Router wires every endpoint. Endpoints other than the account flows
// require a bearer access token.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(h.requestLog)

	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
	r.Post("/verifyemail", h.VerifyEmail)
	r.Post("/resendverification", h.ResendVerification)
	r.Post("/forgotpassword", h.ForgotPassword)
	r.Post("/resetpassword", h.ResetPassword)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Post("/logout", h.Logout)
		r.Post("/about", h.About)

		r.Post("/foldercreate", h.CreateFolder)
		r.Post("/folderlist", h.ListFolders)
		r.Post("/folderrename", h.RenameFolder)
		r.Post("/folderdelete", h.DeleteFolder)
		r.Post("/foldernotes", h.FolderNotes)

		r.Post("/notecreate", h.CreateNote)
		r.Post("/noteget", h.GetNote)
		r.Post("/noteedit", h.EditNote)
		r.Post("/notedelete", h.DeleteNote)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		h.ok(w, r, nil)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.fail(w, r, http.StatusNotFound, "Unknown endpoint")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.fail(w, r, http.StatusMethodNotAllowed, "Use POST")
	})

	return r
}
