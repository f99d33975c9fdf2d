// Package service holds the contact business rules.
package service

import (
	"context"

	"flowledger_backend/internal/contacts/repository"
	"flowledger_backend/platform/config"
	"flowledger_backend/platform/logger"
	"flowledger_backend/platform/phone"

	"github.com/google/uuid"
)

type Service struct {
	store repository.ContactStore
	cfg   config.PhoneConfig
	log   *logger.Logger
}

func New(store repository.ContactStore, cfg config.PhoneConfig, log *logger.Logger) *Service {
	return &Service{store: store, cfg: cfg, log: log}
}

func (s *Service) ListContacts(ctx context.Context, organizationID string) ([]repository.Contact, error) {
	return s.store.List(ctx, organizationID)
}

// CreateContact normalizes the phone number to E.164 before persisting so the
// same person entered as "0754..." and "+255754..." dedupes downstream.
func (s *Service) CreateContact(ctx context.Context, organizationID, fullName string, email, phoneNumber *string) (repository.Contact, error) {
	if phoneNumber != nil && *phoneNumber != "" {
		normalized := phone.NormalizeE164(*phoneNumber, s.cfg.GetPhoneDefaultRegion())
		phoneNumber = &normalized
	}

	contact := repository.Contact{
		OrganizationID: organizationID,
		FullName:       fullName,
		Email:          email,
		Phone:          phoneNumber,
	}

	created, err := s.store.Create(ctx, contact)
	if err != nil {
		return repository.Contact{}, err
	}

	s.log.Info("contact created", "organization_id", organizationID, "contact_id", created.ID.String())
	return created, nil
}

func (s *Service) DeleteContact(ctx context.Context, id uuid.UUID, organizationID string) error {
	return s.store.Delete(ctx, id, organizationID)
}
