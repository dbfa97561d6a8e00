package handler

import (
	"net/http"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	_, err := h.users.Register(r.Context(),
		r.PostFormValue("username"),
		r.PostFormValue("password"),
		r.PostFormValue("email"),
		r.PostFormValue("phone"),
	)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, body{common.FieldMessage: "Account created. Check your email for the verification code."})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	user, pair, err := h.users.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, body{
		common.FieldUser:         user.Public(),
		common.FieldAccessToken:  pair.AccessToken,
		common.FieldRefreshToken: pair.RefreshToken,
	})
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	pair, err := h.users.RefreshToken(r.Context(), r.PostFormValue(common.FieldRefreshToken))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, body{
		common.FieldAccessToken:  pair.AccessToken,
		common.FieldRefreshToken: pair.RefreshToken,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Logout(r.Context(), userID(r.Context())); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, body{common.FieldMessage: "Logged out"})
}

func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Profile(r.Context(), userID(r.Context()))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, body{common.FieldUser: user.Public()})
}

func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.users.VerifyEmail(r.Context(), r.PostFormValue("token")); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, body{common.FieldMessage: "Email verified. You can log in now."})
}

func (h *Handler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	if err := h.users.ResendVerification(r.Context(), r.PostFormValue("email")); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, body{common.FieldMessage: "Verification code sent"})
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	if err := h.users.ForgotPassword(r.Context(), r.PostFormValue("email")); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, body{common.FieldMessage: "If the address is registered, a reset token was sent"})
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	if err := h.users.ResetPassword(r.Context(), r.PostFormValue("token"), r.PostFormValue("password")); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, body{common.FieldMessage: "Password reset"})
}
