package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/policy"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.List(r.Context(), identity(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, PageList, ViewContext{ctxObjectList: notes})
}

func (h *Handler) addNotePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, PageForm, ViewContext{ctxForm: Form{Data: models.NoteForm{}}})
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	form, err := noteFormFromRequest(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid form body")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	_, err = h.services.NoteService.Create(r.Context(), identity(r), &form)
	if fieldErrors, ok := validators.AsFieldErrors(err); ok {
		h.render(w, r, http.StatusOK, PageForm, ViewContext{ctxForm: Form{Data: form, Errors: fieldErrors}})
		return
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.redirect(w, r, RouteSuccess)
}

func (h *Handler) noteDetail(w http.ResponseWriter, r *http.Request) {
	note, err := h.services.NoteService.Get(r.Context(), identity(r), chi.URLParam(r, "slug"), policy.ActionView)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, PageDetail, ViewContext{ctxNote: note})
}

func (h *Handler) editNotePage(w http.ResponseWriter, r *http.Request) {
	note, err := h.services.NoteService.Get(r.Context(), identity(r), chi.URLParam(r, "slug"), policy.ActionEdit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, PageForm, ViewContext{
		ctxForm: Form{Data: models.NoteFormFromNote(note)},
		ctxNote: note,
	})
}

func (h *Handler) editNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	form, err := noteFormFromRequest(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid form body")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	_, err = h.services.NoteService.Update(ctx, identity(r), slug, &form)
	if fieldErrors, ok := validators.AsFieldErrors(err); ok {
		h.render(w, r, http.StatusOK, PageForm, ViewContext{
			ctxForm: Form{Data: form, Errors: fieldErrors},
			ctxNote: models.Note{Slug: slug},
		})
		return
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.redirect(w, r, RouteSuccess)
}

func (h *Handler) deleteNotePage(w http.ResponseWriter, r *http.Request) {
	note, err := h.services.NoteService.Get(r.Context(), identity(r), chi.URLParam(r, "slug"), policy.ActionDelete)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, PageDelete, ViewContext{ctxNote: note})
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.services.NoteService.Delete(r.Context(), identity(r), chi.URLParam(r, "slug")); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.redirect(w, r, RouteSuccess)
}

func noteFormFromRequest(r *http.Request) (models.NoteForm, error) {
	if err := r.ParseForm(); err != nil {
		return models.NoteForm{}, err
	}

	return models.NoteForm{
		Title: r.PostForm.Get(validators.FieldTitle),
		Text:  r.PostForm.Get(validators.FieldText),
		Slug:  r.PostForm.Get(validators.FieldSlug),
	}, nil
}
