package transport

// MembershipResponse is one organization membership as shown to the picker UI.
type MembershipResponse struct {
	OrganizationID       string  `json:"organizationId"`
	OrganizationName     string  `json:"organizationName"`
	OrganizationSlug     *string `json:"organizationSlug,omitempty"`
	OrganizationImageURL *string `json:"organizationImageUrl,omitempty"`
	Role                 string  `json:"role"`
}

type ListMembershipsResponse struct {
	Organizations []MembershipResponse `json:"organizations"`
}

type SelectOrganizationRequest struct {
	OrganizationID string `json:"organizationId" validate:"required"`
}

type SelectOrganizationResponse struct {
	URL string `json:"url"`
}
