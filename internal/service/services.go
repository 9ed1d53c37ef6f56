package service

import (
	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/validators"
)

type Services struct {
	AuthService AuthService
	NoteService NoteService
}

// NewServices wires the services over storages. denied receives access
// policy refusals and may be nil.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, denied AccessDeniedRecorder, logger *logger.Logger) (*Services, error) {
	forms := validators.NewFormValidator()

	authService, err := NewAuthService(
		storages.UserRepository,
		storages.SessionStorage,
		validators.NewAuthFormValidator(forms),
		cfg.App,
		logger,
	)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: authService,
		NoteService: NewNoteService(storages.NoteRepository, validators.NewNoteFormValidator(forms, storages.NoteRepository), denied, logger),
	}, nil
}
