package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/validators"
)

// Non-owners get the same answer as for a missing note.
var errorStatusMap = map[error]int{
	store.ErrNoteNotFound:       http.StatusNotFound,
	service.ErrAccessDenied:     http.StatusNotFound,
	service.ErrNotAuthenticated: http.StatusUnauthorized,
	validators.ErrInvalidForm:   http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
