package storage

import (
	"context"
	"testing"
)

func TestNewMemory(t *testing.T) {
	store, err := NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	defer func() { _ = store.Close() }()

	if store == nil {
		t.Error("NewMemory() returned nil storage")
	}
}

func TestSqliteKV_GetPutDelete(t *testing.T) {
	store, err := NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	kv := store.KV()

	t.Run("get missing key", func(t *testing.T) {
		_, ok, err := kv.Get(ctx, "missing")
		if err != nil {
			t.Errorf("Get() error = %v", err)
		}
		if ok {
			t.Error("Get() on a missing key should report not found")
		}
	})

	t.Run("put and get", func(t *testing.T) {
		if err := kv.Put(ctx, "k", []byte(`{"a":1}`)); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		value, ok, err := kv.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !ok {
			t.Fatal("Get() should find the stored key")
		}
		if string(value) != `{"a":1}` {
			t.Errorf("Get() = %s, want {\"a\":1}", value)
		}
	})

	t.Run("put replaces", func(t *testing.T) {
		if err := kv.Put(ctx, "k", []byte(`{"a":2}`)); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		value, _, err := kv.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(value) != `{"a":2}` {
			t.Errorf("Get() = %s, want {\"a\":2}", value)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := kv.Delete(ctx, "k"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		_, ok, err := kv.Get(ctx, "k")
		if err != nil {
			t.Errorf("Get() error = %v", err)
		}
		if ok {
			t.Error("Get() should not find a deleted key")
		}

		// Deleting a missing key is fine
		if err := kv.Delete(ctx, "k"); err != nil {
			t.Errorf("Delete() on a missing key error = %v", err)
		}
	})
}
