// Package tenancy provides the tenant resolution bounded context module:
// organization membership listing, routing decisions after authentication,
// and explicit organization selection.
package tenancy

import (
	"flowledger_backend/internal/directory"
	apphttp "flowledger_backend/internal/http"
	"flowledger_backend/internal/tenancy/handler"
	"flowledger_backend/internal/tenancy/service"
	"flowledger_backend/platform/config"
	"flowledger_backend/platform/logger"
	"flowledger_backend/platform/validator"
)

// Module is the tenancy bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the tenancy module with all its dependencies.
func NewModule(dir directory.Service, cfg config.TenantURLConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(dir, cfg, log)
	h := handler.New(svc, val, log)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "tenancy"
}

// Service returns the tenancy service for use by other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts tenancy routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// The callback is rate limited like other auth endpoints: it runs once
	// per sign-in and fans out to the identity directory.
	ctx.Protected.GET("/auth/callback", ctx.AuthRateLimiter.RateLimit(), m.handler.AuthCallback)

	ctx.Protected.GET("/organizations", m.handler.ListOrganizations)
	ctx.Protected.POST("/organizations/select", m.handler.SelectOrganization)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
