package repository

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStateStore_SetGetDelete(t *testing.T) {
	store := NewMemoryStateStore()
	ctx := context.Background()

	if err := store.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, err := store.Get(ctx, "k")
	if err != nil || string(val) != "v" {
		t.Fatalf("get = %q, %v", val, err)
	}
	ok, err := store.Exists(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("exists = %v, %v", ok, err)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	val, err = store.Get(ctx, "k")
	if err != nil || val != nil {
		t.Fatalf("get after delete = %q, %v", val, err)
	}
}

func TestMemoryStateStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStateStore()
	ctx := context.Background()

	if err := store.Set(ctx, "session", []byte("1"), 10*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	ok, err := store.Exists(ctx, "session")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Fatalf("entry must expire after its TTL")
	}
}
