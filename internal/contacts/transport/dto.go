// Package transport defines request and response DTOs for the contacts API.
package transport

import "time"

type CreateContactRequest struct {
	FullName string  `json:"fullName" validate:"required,max=200"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=40"`
}

type ContactResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListContactsResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}
