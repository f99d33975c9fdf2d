// Package payments provides the payment-status side channel: the provider
// webhook that writes status records and the read-only status endpoint.
package payments

import (
	"flowledger_backend/internal/events"
	apphttp "flowledger_backend/internal/http"
	"flowledger_backend/internal/payments/handler"
	"flowledger_backend/internal/payments/status"
	"flowledger_backend/internal/scheduler"
	"flowledger_backend/platform/config"
	"flowledger_backend/platform/logger"
	"flowledger_backend/platform/validator"

	"github.com/redis/go-redis/v9"
)

// Module is the payments bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	store   *status.Store
}

// NewModule creates and initializes the payments module. The expiry scheduler
// may be nil when its client failed to initialize; pending records then
// simply age out with the store TTL.
func NewModule(rdb *redis.Client, bus events.Bus, sched scheduler.PaymentExpiryScheduler, val *validator.Validator, cfg config.PaymentsConfig, log *logger.Logger) *Module {
	store := status.NewStore(rdb, cfg.GetPaymentStatusTTL())
	h := handler.New(store, bus, sched, val, cfg, log)

	return &Module{
		handler: h,
		store:   store,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "payments"
}

// Store returns the status store for use by the worker process.
func (m *Module) Store() *status.Store {
	return m.store
}

// RegisterRoutes mounts payment routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Signature-authenticated, no session: the provider calls this directly.
	ctx.V1.POST("/webhooks/payments", m.handler.Webhook)

	ctx.Protected.GET("/payments/:orderReference/status", m.handler.GetStatus)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
