package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/gojobs/board/internal/apperrors"
	"github.com/gojobs/board/internal/captcha"
	"github.com/gojobs/board/internal/dtos"
	"github.com/gojobs/board/internal/logging"
	"github.com/gojobs/board/internal/models"
	"github.com/gojobs/board/internal/repositories"
)

type ContactService struct {
	contacts repositories.ContactRepository
	verifier captcha.Verifier
	validate *validator.Validate
	log      logging.Logger
}

func NewContactService(contacts repositories.ContactRepository, verifier captcha.Verifier, log logging.Logger) *ContactService {
	return &ContactService{
		contacts: contacts,
		verifier: verifier,
		validate: newValidator(),
		log:      log.With("service", "contacts"),
	}
}

// Submit stores an inbound contact message. The captcha gate runs first: a
// rejected token means nothing is validated or persisted. The returned
// contact carries a reference code for the sender.
func (s *ContactService) Submit(ctx context.Context, req *dtos.ContactRequest) (*models.Contact, error) {
	if !s.verifier.Verify(ctx, req.CaptchaToken) {
		return nil, apperrors.ErrVerification
	}
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		Reference: uuid.NewString(),
		Name:      req.Name,
		Subject:   req.Subject,
		Email:     req.Email,
		Message:   req.Message,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "contact message stored", "reference", contact.Reference)
	return contact, nil
}
