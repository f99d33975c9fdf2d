package notification

import (
	"context"
	"fmt"

	"flowledger_backend/internal/events"
	"flowledger_backend/platform/config"
	"flowledger_backend/platform/logger"
)

// Module subscribes to domain events and sends operational email alerts.
// Domain modules publish events without knowing about email delivery.
type Module struct {
	sender Sender
	cfg    config.EmailConfig
	log    *logger.Logger
}

// NewModule creates the notification module. When email delivery is disabled
// it falls back to a no-op sender so the rest of the wiring is unchanged.
func NewModule(cfg config.EmailConfig, log *logger.Logger) *Module {
	var sender Sender = NoopSender{}
	if cfg.GetEmailEnabled() {
		sender = NewSMTPSender(
			cfg.GetSMTPHost(),
			cfg.GetSMTPPort(),
			cfg.GetSMTPUsername(),
			cfg.GetSMTPPassword(),
			cfg.GetEmailFromAddress(),
			cfg.GetEmailFromName(),
		)
	}

	return &Module{sender: sender, cfg: cfg, log: log}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "notification" }

// RegisterHandlers subscribes to all relevant domain events on the event bus.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.PaymentStatusUpdated{}.EventName(), m)

	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.PaymentStatusUpdated:
		return m.handlePaymentStatusUpdated(ctx, e)
	default:
		return fmt.Errorf("notification: unhandled event %s", event.EventName())
	}
}

func (m *Module) handlePaymentStatusUpdated(ctx context.Context, e events.PaymentStatusUpdated) error {
	toEmail := m.cfg.GetBillingAlertEmail()
	if toEmail == "" {
		return nil
	}

	if err := m.sender.SendPaymentStatusAlert(ctx, toEmail, e.OrderReference, e.Status); err != nil {
		m.log.Error("failed to send payment status alert",
			"order_reference", e.OrderReference,
			"status", e.Status,
			"error", err.Error())
		return err
	}

	return nil
}
