// Package session provides the session claims model and the authorization
// gate. Claims are minted and signed entirely by the external identity
// provider; this package only reads them. Every function that needs claims
// receives them as an explicit argument, never from ambient state.
package session

// Organization is the organization-scoped portion of the session claims.
// When present, ID is always set; Role and Slug depend on how the identity
// provider is configured and may be absent.
type Organization struct {
	ID   string  `json:"id"`
	Role *string `json:"role,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

// Claims describes what the identity provider asserts about the current
// authenticated principal. All fields are optional; absence means "unknown",
// never an error.
type Claims struct {
	FirstName        *string       `json:"firstName,omitempty"`
	OrganizationName *string       `json:"organizationName,omitempty"`
	OrganizationLogo *string       `json:"organizationLogo,omitempty"`
	Organization     *Organization `json:"organization,omitempty"`
}

// OrganizationID returns the active organization ID, if any.
func (c *Claims) OrganizationID() (string, bool) {
	if c == nil || c.Organization == nil || c.Organization.ID == "" {
		return "", false
	}
	return c.Organization.ID, true
}

// OrganizationRole returns the caller's role within the active organization,
// if known. The role is scoped to the current membership; the same user may
// hold different roles in different organizations.
func (c *Claims) OrganizationRole() (string, bool) {
	if c == nil || c.Organization == nil || c.Organization.Role == nil || *c.Organization.Role == "" {
		return "", false
	}
	return *c.Organization.Role, true
}

// OrganizationSlug returns the active organization slug, if known.
func (c *Claims) OrganizationSlug() (string, bool) {
	if c == nil || c.Organization == nil || c.Organization.Slug == nil || *c.Organization.Slug == "" {
		return "", false
	}
	return *c.Organization.Slug, true
}
