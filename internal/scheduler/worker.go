package scheduler

import (
	"context"
	"fmt"

	"flowledger_backend/internal/events"
	"flowledger_backend/internal/payments/status"
	"flowledger_backend/platform/config"
	"flowledger_backend/platform/logger"

	"github.com/hibiken/asynq"
)

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	store  *status.Store
	bus    events.Bus
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, store *status.Store, bus events.Bus, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		store:  store,
		bus:    bus,
		log:    log,
	}

	mux.HandleFunc(TaskPaymentExpirePending, w.handlePaymentExpirePending)

	return w, nil
}

// handlePaymentExpirePending marks a still-pending payment record expired.
// Records that reached a terminal state before the check fires are skipped.
func (w *Worker) handlePaymentExpirePending(ctx context.Context, task *asynq.Task) error {
	payload, err := ParsePaymentExpirePendingPayload(task)
	if err != nil {
		return err
	}

	expired, err := w.store.ExpirePending(ctx, payload.OrderReference)
	if err != nil {
		return err
	}

	if !expired {
		return nil
	}

	w.log.Info("pending payment expired", "order_reference", payload.OrderReference)

	if w.bus != nil {
		return w.bus.PublishSync(ctx, events.PaymentStatusUpdated{
			BaseEvent:      events.NewBaseEvent(),
			OrderReference: payload.OrderReference,
			Status:         status.StatusExpired,
		})
	}

	return nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
