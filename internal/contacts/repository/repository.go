// Package repository provides tenant-scoped Postgres persistence for contacts.
package repository

import (
	"context"
	"errors"
	"time"

	"flowledger_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Contact is one tenant-scoped contact row.
type Contact struct {
	ID             uuid.UUID
	OrganizationID string
	FullName       string
	Email          *string
	Phone          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Every query filters on organization_id; a contact is never visible outside
// its tenant.
const listContactsQuery = `
SELECT id, organization_id, full_name, email, phone, created_at, updated_at
FROM contacts
WHERE organization_id = $1
ORDER BY created_at DESC`

const insertContactQuery = `
INSERT INTO contacts (organization_id, full_name, email, phone)
VALUES ($1, $2, $3, $4)
RETURNING id, organization_id, full_name, email, phone, created_at, updated_at`

const deleteContactQuery = `
DELETE FROM contacts
WHERE id = $1 AND organization_id = $2`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) List(ctx context.Context, organizationID string) ([]Contact, error) {
	rows, err := r.pool.Query(ctx, listContactsQuery, organizationID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list contacts", err).WithOp("contacts.List")
	}
	defer rows.Close()

	contacts := make([]Contact, 0)
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.OrganizationID, &c.FullName, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to scan contact", err).WithOp("contacts.List")
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list contacts", err).WithOp("contacts.List")
	}

	return contacts, nil
}

func (r *Repository) Create(ctx context.Context, contact Contact) (Contact, error) {
	row := r.pool.QueryRow(ctx, insertContactQuery, contact.OrganizationID, contact.FullName, contact.Email, contact.Phone)

	var created Contact
	if err := row.Scan(&created.ID, &created.OrganizationID, &created.FullName, &created.Email, &created.Phone, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return Contact{}, apperr.Wrap(apperr.KindInternal, "failed to create contact", err).WithOp("contacts.Create")
	}

	return created, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID, organizationID string) error {
	tag, err := r.pool.Exec(ctx, deleteContactQuery, id, organizationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("contact not found").WithOp("contacts.Delete")
		}
		return apperr.Wrap(apperr.KindInternal, "failed to delete contact", err).WithOp("contacts.Delete")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("contact not found").WithOp("contacts.Delete")
	}

	return nil
}

var _ ContactStore = (*Repository)(nil)
