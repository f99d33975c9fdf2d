package status

import (
	"context"
	"testing"
	"time"

	"flowledger_backend/platform/apperr"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStore(rdb, ttl), mr
}

func int64Ptr(v int64) *int64 { return &v }

func TestSetAndGetRoundTrip(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	err := store.Set(ctx, Record{
		OrderReference: "ord_123",
		Status:         StatusPaid,
		AmountCents:    int64Ptr(250000),
		Currency:       "TZS",
	})
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if !mr.Exists("payment:ord_123") {
		t.Fatal("expected record under payment:ord_123")
	}

	record, err := store.Get(ctx, "ord_123")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if record.Status != StatusPaid {
		t.Fatalf("expected paid, got %q", record.Status)
	}
	if record.AmountCents == nil || *record.AmountCents != 250000 {
		t.Fatal("expected amount 250000")
	}
	if record.UpdatedAt.IsZero() {
		t.Fatal("expected UpdatedAt to be stamped")
	}
}

func TestGetMissingIsNotFound(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, err := store.Get(context.Background(), "ord_missing")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSetAppliesTTL(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)

	if err := store.Set(context.Background(), Record{OrderReference: "ord_ttl", Status: StatusPending}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if mr.TTL("payment:ord_ttl") != time.Minute {
		t.Fatalf("expected TTL of 1m, got %v", mr.TTL("payment:ord_ttl"))
	}
}

func TestExpirePendingTransitionsOnlyPending(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	if err := store.Set(ctx, Record{OrderReference: "ord_p", Status: StatusPending}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	expired, err := store.ExpirePending(ctx, "ord_p")
	if err != nil {
		t.Fatalf("expire failed: %v", err)
	}
	if !expired {
		t.Fatal("expected pending record to expire")
	}

	record, err := store.Get(ctx, "ord_p")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if record.Status != StatusExpired {
		t.Fatalf("expected expired, got %q", record.Status)
	}

	// Terminal states are left untouched.
	if err := store.Set(ctx, Record{OrderReference: "ord_paid", Status: StatusPaid}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	expired, err = store.ExpirePending(ctx, "ord_paid")
	if err != nil {
		t.Fatalf("expire failed: %v", err)
	}
	if expired {
		t.Fatal("paid record must not be expired")
	}
}

func TestExpirePendingDoesNotClobberLateConfirmation(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	if err := store.Set(ctx, Record{OrderReference: "ord_late", Status: StatusPending}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	// The provider confirms while the expiry task is already in flight.
	if err := store.Set(ctx, Record{OrderReference: "ord_late", Status: StatusPaid, AmountCents: int64Ptr(9900), Currency: "TZS"}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	expired, err := store.ExpirePending(ctx, "ord_late")
	if err != nil {
		t.Fatalf("expire failed: %v", err)
	}
	if expired {
		t.Fatal("expiry must not transition a record that was confirmed")
	}

	record, err := store.Get(ctx, "ord_late")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if record.Status != StatusPaid {
		t.Fatalf("confirmed payment was overwritten, got %q", record.Status)
	}
	if record.AmountCents == nil || *record.AmountCents != 9900 {
		t.Fatal("confirmed payment amount was lost")
	}
}

func TestExpirePendingMissingRecordIsNoop(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	expired, err := store.ExpirePending(context.Background(), "ord_gone")
	if err != nil {
		t.Fatalf("expected no error for missing record, got %v", err)
	}
	if expired {
		t.Fatal("missing record must not report expiry")
	}
}
