// Package directory provides the client for the external identity provider's
// membership-listing capability. This file defines the public API of the
// directory bounded context; other domains depend on the Service interface,
// not on the concrete client.
package directory

import "context"

// Membership is one user-organization pair as reported by the identity
// provider. It is fetched fresh per request, never cached or mutated here,
// and never persisted.
type Membership struct {
	OrganizationID       string  `json:"organizationId"`
	OrganizationName     string  `json:"organizationName"`
	OrganizationSlug     *string `json:"organizationSlug,omitempty"`
	OrganizationImageURL *string `json:"organizationImageUrl,omitempty"`
	Role                 string  `json:"role"`
}

// Service lists organization memberships for an already-authenticated user.
// Callers must not invoke ListMemberships with an empty user ID; that is a
// caller precondition, not an internal check.
//
// A failed remote call surfaces as an apperr KindUnavailable error. It is
// never degraded to an empty list: zero memberships routes a user to
// onboarding, and a provider outage must not do that.
type Service interface {
	ListMemberships(ctx context.Context, userID string) ([]Membership, error)
}
