package handler

import (
	"net/http"

	"flowledger_backend/internal/contacts/repository"
	"flowledger_backend/internal/contacts/service"
	"flowledger_backend/internal/contacts/transport"
	"flowledger_backend/internal/session"
	"flowledger_backend/platform/httpkit"
	"flowledger_backend/platform/logger"
	"flowledger_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

// organizationScope extracts the caller's active organization after checking
// the role gate. Every contacts endpoint operates inside exactly one tenant.
func (h *Handler) organizationScope(c *gin.Context) (string, bool) {
	claims := session.ClaimsFromContext(c)
	if _, err := session.RequireRole(claims); err != nil {
		httpkit.HandleError(c, err)
		return "", false
	}

	organizationID, ok := claims.OrganizationID()
	if !ok {
		httpkit.Error(c, http.StatusForbidden, "no active organization", nil)
		return "", false
	}

	return organizationID, true
}

func (h *Handler) ListContacts(c *gin.Context) {
	organizationID, ok := h.organizationScope(c)
	if !ok {
		return
	}

	contacts, err := h.svc.ListContacts(c.Request.Context(), organizationID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ListContactsResponse{Contacts: toResponses(contacts)})
}

func (h *Handler) CreateContact(c *gin.Context) {
	organizationID, ok := h.organizationScope(c)
	if !ok {
		return
	}

	var req transport.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	created, err := h.svc.CreateContact(c.Request.Context(), organizationID, req.FullName, req.Email, req.Phone)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, toResponse(created))
}

func (h *Handler) DeleteContact(c *gin.Context) {
	organizationID, ok := h.organizationScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid contact id", nil)
		return
	}

	if err := h.svc.DeleteContact(c.Request.Context(), id, organizationID); httpkit.HandleError(c, err) {
		return
	}

	c.Status(http.StatusNoContent)
}

func toResponse(c repository.Contact) transport.ContactResponse {
	return transport.ContactResponse{
		ID:        c.ID.String(),
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toResponses(contacts []repository.Contact) []transport.ContactResponse {
	out := make([]transport.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, toResponse(c))
	}
	return out
}
