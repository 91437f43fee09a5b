package storage

import (
	"context"
	"sync"

	"github.com/pausequest/pausequest-cli/internal/ports"
)

// memoryKV is a map-backed ports.KeyValueStore for tests and ephemeral runs.
type memoryKV struct {
	mu      sync.RWMutex
	records map[string][]byte
}

var _ ports.KeyValueStore = (*memoryKV)(nil)

// NewMemoryKV returns an empty in-memory key-value store.
func NewMemoryKV() ports.KeyValueStore {
	return &memoryKV{records: make(map[string][]byte)}
}

func (kv *memoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	value, ok := kv.records[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (kv *memoryKV) Put(_ context.Context, key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	kv.records[key] = stored
	return nil
}

func (kv *memoryKV) Delete(_ context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.records, key)
	return nil
}

// memoryStorage bundles the in-memory KV with the typed repositories.
type memoryStorage struct {
	kv ports.KeyValueStore
}

var _ ports.Storage = (*memoryStorage)(nil)

// NewMemoryStorage returns a ports.Storage backed entirely by memory.
func NewMemoryStorage() ports.Storage {
	return &memoryStorage{kv: NewMemoryKV()}
}

func (s *memoryStorage) Stats() ports.StatsRepository {
	return &statsRepository{kv: s.kv}
}

func (s *memoryStorage) Scheduler() ports.SchedulerRepository {
	return &schedulerRepository{kv: s.kv}
}

func (s *memoryStorage) Settings() ports.SettingsRepository {
	return &settingsRepository{kv: s.kv}
}

func (s *memoryStorage) KV() ports.KeyValueStore {
	return s.kv
}

func (s *memoryStorage) Close() error {
	return nil
}
