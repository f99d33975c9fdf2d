package transport

import "time"

// WebhookPayload is the payment provider's status notification body.
type WebhookPayload struct {
	OrderReference string `json:"orderReference" validate:"required,max=120"`
	Status         string `json:"status" validate:"required,oneof=pending paid failed"`
	AmountCents    *int64 `json:"amountCents" validate:"omitempty,min=0"`
	Currency       string `json:"currency" validate:"omitempty,len=3"`
}

// WebhookResponse acknowledges receipt of a provider notification.
type WebhookResponse struct {
	Received bool `json:"received"`
}

// StatusResponse is the read-only view of a payment status record.
type StatusResponse struct {
	OrderReference string    `json:"orderReference"`
	Status         string    `json:"status"`
	AmountCents    *int64    `json:"amountCents,omitempty"`
	Currency       string    `json:"currency,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
