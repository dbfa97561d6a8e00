package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/auth"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/services"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
)

type body map[string]any

func writeJSON(ctx context.Context, log logging.Logger, w http.ResponseWriter, status int, data body) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error(ctx, "writeJSON encode", "err", err)
	}
}

func (h *Handler) ok(w http.ResponseWriter, r *http.Request, data body) {
	if data == nil {
		data = body{}
	}
	data[common.FieldStatus] = common.StatusSuccess
	writeJSON(r.Context(), h.log, w, http.StatusOK, data)
}

// fail answers with a FAILED payload. The message goes into both "msg" and
// "error" since clients read either.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(r.Context(), h.log, w, status, body{
		common.FieldStatus:  common.StatusFailed,
		common.FieldMessage: msg,
		common.FieldError:   msg,
	})
}

type errorMapping struct {
	status int
	msg    string
}

var errorTable = map[error]errorMapping{
	services.ErrUserExists:          {http.StatusConflict, "Username or email already registered"},
	services.ErrInvalidCredentials:  {http.StatusUnauthorized, "Invalid username or password"},
	services.ErrNotVerified:         {http.StatusForbidden, "Please verify your email first"},
	services.ErrInvalidCode:         {http.StatusBadRequest, "Invalid or expired code"},
	services.ErrInvalidResetToken:   {http.StatusBadRequest, "Invalid or expired token"},
	services.ErrInvalidRefreshToken: {http.StatusUnauthorized, "Invalid refresh token"},
	services.ErrRefreshTokenExpired: {http.StatusUnauthorized, "Refresh token expired"},
	services.ErrUnknownEmail:        {http.StatusNotFound, "No account with that email"},
	services.ErrFolderNotFound:      {http.StatusNotFound, "Folder not found"},
	services.ErrNoteNotFound:        {http.StatusNotFound, "Note not found"},
	auth.ErrTokenExpired:            {http.StatusUnauthorized, "Token expired"},
	auth.ErrInvalidToken:            {http.StatusUnauthorized, "Invalid token"},
}

// serviceError maps a service error onto a status and message. Unknown
// errors are logged and reported as 500.
func (h *Handler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		h.fail(w, r, http.StatusBadRequest, ve.Msg)
		return
	}
	for target, m := range errorTable {
		if errors.Is(err, target) {
			h.fail(w, r, m.status, m.msg)
			return
		}
	}
	h.log.Error(r.Context(), "request failed", "path", r.URL.Path, "err", err)
	h.fail(w, r, http.StatusInternalServerError, "Internal error")
}
