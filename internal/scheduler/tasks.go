package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskPaymentExpirePending = "payments.expire_pending"

type PaymentExpirePendingPayload struct {
	OrderReference string `json:"orderReference"`
}

func NewPaymentExpirePendingTask(payload PaymentExpirePendingPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPaymentExpirePending, data), nil
}

func ParsePaymentExpirePendingPayload(task *asynq.Task) (PaymentExpirePendingPayload, error) {
	var payload PaymentExpirePendingPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return PaymentExpirePendingPayload{}, err
	}
	return payload, nil
}
