package handler

import (
	"net/http"

	"flowledger_backend/internal/session"
	"flowledger_backend/internal/tenancy/routing"
	"flowledger_backend/internal/tenancy/service"
	"flowledger_backend/internal/tenancy/transport"
	"flowledger_backend/platform/httpkit"
	"flowledger_backend/platform/logger"
	"flowledger_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Frontend destinations for routing decisions.
const (
	signInPath             = "/sign-in"
	onboardingPath         = "/onboarding/create-organization"
	selectOrganizationPath = "/select-organization"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

// AuthCallback is the post-authentication landing. It resolves the user's
// memberships and redirects to onboarding, to the tenant dashboard, or to the
// organization picker. Any resolver failure is a terminal auth failure for
// this request: the user is sent back to sign-in rather than misrouted to
// onboarding or a guessed tenant.
func (h *Handler) AuthCallback(c *gin.Context) {
	userID, ok := session.UserIDFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, signInPath)
		return
	}

	decision, err := h.svc.ResolveDestination(c.Request.Context(), userID)
	if err != nil {
		h.log.AuthEvent("auth_callback", userID, false, err.Error())
		c.Redirect(http.StatusFound, signInPath)
		return
	}

	h.log.AuthEvent("auth_callback", userID, true, "")

	switch decision.Kind {
	case routing.KindOnboarding:
		c.Redirect(http.StatusFound, onboardingPath)
	case routing.KindTenant:
		c.Redirect(http.StatusFound, decision.TenantURL)
	default:
		c.Redirect(http.StatusFound, selectOrganizationPath)
	}
}

// ListOrganizations returns the caller's memberships for the picker.
func (h *Handler) ListOrganizations(c *gin.Context) {
	userID, ok := session.UserIDFromContext(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	memberships, err := h.svc.ListMemberships(c.Request.Context(), userID)
	if httpkit.HandleError(c, err) {
		return
	}

	organizations := make([]transport.MembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		organizations = append(organizations, transport.MembershipResponse{
			OrganizationID:       m.OrganizationID,
			OrganizationName:     m.OrganizationName,
			OrganizationSlug:     m.OrganizationSlug,
			OrganizationImageURL: m.OrganizationImageURL,
			Role:                 m.Role,
		})
	}

	httpkit.OK(c, transport.ListMembershipsResponse{Organizations: organizations})
}

// SelectOrganization resolves the tenant URL for the caller's explicit pick.
func (h *Handler) SelectOrganization(c *gin.Context) {
	userID, ok := session.UserIDFromContext(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req transport.SelectOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	url, err := h.svc.SelectOrganization(c.Request.Context(), userID, req.OrganizationID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.SelectOrganizationResponse{URL: url})
}
