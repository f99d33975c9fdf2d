// Package status provides the payment-status key-value store. The payment
// provider's webhook writes opaque status records here; the rest of the
// system only ever reads them.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"flowledger_backend/platform/apperr"

	"github.com/redis/go-redis/v9"
)

// Payment status values written by the webhook and the expiry worker.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusFailed  = "failed"
	StatusExpired = "expired"
)

const keyPrefix = "payment:"

// Record is one payment status entry, keyed by order reference.
type Record struct {
	OrderReference string    `json:"orderReference"`
	Status         string    `json:"status"`
	AmountCents    *int64    `json:"amountCents,omitempty"`
	Currency       string    `json:"currency,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Store persists payment status records in redis with a TTL.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore creates a status store. A zero TTL means records never expire.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func key(orderReference string) string {
	return keyPrefix + orderReference
}

// Set writes the record under payment:{orderReference}, stamping UpdatedAt.
func (s *Store) Set(ctx context.Context, record Record) error {
	record.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(record)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to encode payment status", err).WithOp("status.Set")
	}

	if err := s.rdb.Set(ctx, key(record.OrderReference), data, s.ttl).Err(); err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "payment status store unavailable", err).WithOp("status.Set")
	}

	return nil
}

// Get reads the record for an order reference.
func (s *Store) Get(ctx context.Context, orderReference string) (Record, error) {
	data, err := s.rdb.Get(ctx, key(orderReference)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, apperr.NotFound("payment status not found").WithOp("status.Get")
	}
	if err != nil {
		return Record{}, apperr.Wrap(apperr.KindUnavailable, "payment status store unavailable", err).WithOp("status.Get")
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, apperr.Wrap(apperr.KindInternal, "failed to decode payment status", err).WithOp("status.Get")
	}

	return record, nil
}

// expirePendingScript performs the pending-to-expired transition server-side
// so the status check and the write are one atomic step. A webhook write
// landing concurrently (a late payment confirmation) changes the stored
// status and the script leaves the record alone.
var expirePendingScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
  return 0
end
local record = cjson.decode(raw)
if record['status'] ~= ARGV[1] then
  return 0
end
record['status'] = ARGV[2]
record['updatedAt'] = ARGV[3]
if tonumber(ARGV[4]) > 0 then
  redis.call('SET', KEYS[1], cjson.encode(record), 'PX', ARGV[4])
else
  redis.call('SET', KEYS[1], cjson.encode(record))
end
return 1
`)

// ExpirePending marks a still-pending record expired. Returns true when the
// record was transitioned; records already in a terminal state, or records
// that reach one while the expiry task runs, are left untouched.
func (s *Store) ExpirePending(ctx context.Context, orderReference string) (bool, error) {
	updatedAt := time.Now().UTC().Format(time.RFC3339Nano)

	transitioned, err := expirePendingScript.Run(ctx, s.rdb, []string{key(orderReference)},
		StatusPending, StatusExpired, updatedAt, s.ttl.Milliseconds()).Int()
	if err != nil {
		return false, apperr.Wrap(apperr.KindUnavailable, "payment status store unavailable", err).WithOp("status.ExpirePending")
	}

	return transitioned == 1, nil
}
