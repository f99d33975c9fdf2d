// Package contacts provides tenant-scoped contact management.
package contacts

import (
	"flowledger_backend/internal/contacts/handler"
	"flowledger_backend/internal/contacts/repository"
	"flowledger_backend/internal/contacts/service"
	apphttp "flowledger_backend/internal/http"
	"flowledger_backend/platform/config"
	"flowledger_backend/platform/logger"
	"flowledger_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the contacts bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the contacts module with all its dependencies.
func NewModule(pool *pgxpool.Pool, cfg config.PhoneConfig, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, log)
	h := handler.New(svc, val, log)

	return &Module{handler: h}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "contacts"
}

// RegisterRoutes mounts contact routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	contacts := ctx.Protected.Group("/contacts")
	{
		contacts.GET("", m.handler.ListContacts)
		contacts.POST("", m.handler.CreateContact)
		contacts.DELETE("/:id", m.handler.DeleteContact)
	}
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
