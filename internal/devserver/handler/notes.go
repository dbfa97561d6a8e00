package handler

import (
	"net/http"
)

func (h *Handler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	f, err := h.notes.CreateFolder(r.Context(), userID(r.Context()), r.PostFormValue("name"))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, body{"folder": f})
}

func (h *Handler) ListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.notes.ListFolders(r.Context(), userID(r.Context()))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, body{"folders": folders})
}

func (h *Handler) RenameFolder(w http.ResponseWriter, r *http.Request) {
	err := h.notes.RenameFolder(r.Context(), userID(r.Context()), r.PostFormValue("id"), r.PostFormValue("name"))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, nil)
}

func (h *Handler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	if err := h.notes.DeleteFolder(r.Context(), userID(r.Context()), r.PostFormValue("id")); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, nil)
}

func (h *Handler) FolderNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.FolderNotes(r.Context(), userID(r.Context()), r.PostFormValue("id"))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, body{"notes": notes})
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	n, err := h.notes.CreateNote(r.Context(), userID(r.Context()),
		r.PostFormValue("folder_id"),
		r.PostFormValue("title"),
		r.PostFormValue("body"),
	)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, body{"note": n})
}

func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	n, err := h.notes.GetNote(r.Context(), userID(r.Context()), r.PostFormValue("id"))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, body{"note": n})
}

// EditNote changes only the fields present in the form.
func (h *Handler) EditNote(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, http.StatusBadRequest, "Malformed form")
		return
	}
	title := formField(r, "title")
	text := formField(r, "body")

	n, err := h.notes.EditNote(r.Context(), userID(r.Context()), r.PostForm.Get("id"), title, text)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, body{"note": n})
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.notes.DeleteNote(r.Context(), userID(r.Context()), r.PostFormValue("id")); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.ok(w, r, nil)
}

func formField(r *http.Request, name string) *string {
	v, ok := r.PostForm[name]
	if !ok || len(v) == 0 {
		return nil
	}
	return &v[0]
}
