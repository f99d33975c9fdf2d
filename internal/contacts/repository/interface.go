package repository

import (
	"context"

	"github.com/google/uuid"
)

// ContactStore defines the persistence operations the contacts service needs.
// Every operation is tenant-scoped by organization ID.
type ContactStore interface {
	List(ctx context.Context, organizationID string) ([]Contact, error)
	Create(ctx context.Context, contact Contact) (Contact, error)
	Delete(ctx context.Context, id uuid.UUID, organizationID string) error
}
