package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"flowledger_backend/internal/events"
	"flowledger_backend/internal/payments/status"
	"flowledger_backend/internal/payments/transport"
	"flowledger_backend/internal/scheduler"
	"flowledger_backend/internal/session"
	"flowledger_backend/platform/config"
	"flowledger_backend/platform/httpkit"
	"flowledger_backend/platform/logger"
	"flowledger_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	store *status.Store
	bus   events.Bus
	sched scheduler.PaymentExpiryScheduler
	val   *validator.Validator
	cfg   config.PaymentsConfig
	log   *logger.Logger
}

func New(store *status.Store, bus events.Bus, sched scheduler.PaymentExpiryScheduler, val *validator.Validator, cfg config.PaymentsConfig, log *logger.Logger) *Handler {
	return &Handler{store: store, bus: bus, sched: sched, val: val, cfg: cfg, log: log}
}

// Webhook receives payment status notifications from the provider. The body
// is authenticated by HMAC signature, not by session; the provider has no
// user context.
func (h *Handler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	if !VerifySignature(h.cfg.GetPaymentWebhookSecret(), body, c.GetHeader(SignatureHeader)) {
		h.log.Warn("payment webhook signature rejected", "client_ip", c.ClientIP())
		httpkit.Error(c, http.StatusUnauthorized, "invalid signature", nil)
		return
	}

	var payload transport.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(payload); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	record := status.Record{
		OrderReference: payload.OrderReference,
		Status:         payload.Status,
		AmountCents:    payload.AmountCents,
		Currency:       payload.Currency,
	}
	if err := h.store.Set(c.Request.Context(), record); err != nil {
		httpkit.HandleError(c, err)
		return
	}

	h.bus.Publish(c.Request.Context(), events.PaymentStatusUpdated{
		BaseEvent:      events.NewBaseEvent(),
		OrderReference: payload.OrderReference,
		Status:         payload.Status,
		AmountCents:    payload.AmountCents,
		Currency:       payload.Currency,
	})

	if payload.Status == status.StatusPending && h.sched != nil {
		runAt := time.Now().Add(h.cfg.GetPaymentPendingExpiry())
		if err := h.sched.SchedulePaymentExpiry(c.Request.Context(), payload.OrderReference, runAt); err != nil {
			// The record is already written; expiry is best-effort.
			h.log.Warn("failed to schedule payment expiry", "order_reference", payload.OrderReference, "error", err)
		}
	}

	httpkit.OK(c, transport.WebhookResponse{Received: true})
}

// GetStatus returns the status record for an order reference. Admin-gated:
// billing records are not visible to regular members.
func (h *Handler) GetStatus(c *gin.Context) {
	claims := session.ClaimsFromContext(c)
	if _, err := session.RequireRole(claims); err != nil {
		httpkit.HandleError(c, err)
		return
	}

	record, err := h.store.Get(c.Request.Context(), c.Param("orderReference"))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.StatusResponse{
		OrderReference: record.OrderReference,
		Status:         record.Status,
		AmountCents:    record.AmountCents,
		Currency:       record.Currency,
		UpdatedAt:      record.UpdatedAt,
	})
}
