package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/buildloghq/buildlog-backend/internal/domain/repository"
)

// ErrKeyNotFound is returned when a key is absent or expired.
var ErrKeyNotFound = errors.New("cache: key not found")

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryRepository is the in-process cache used when redis is disabled.
// Expired entries are dropped lazily on read and in bulk by Sweep, which
// the scheduler runs periodically.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryRepository creates an in-memory cache repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]memoryEntry)}
}

var _ repository.CacheRepository = (*MemoryRepository)(nil)

func (m *MemoryRepository) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	entry := memoryEntry{value: value}
	if expiration > 0 {
		entry.expiresAt = time.Now().Add(expiration)
	}

	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemoryRepository) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return "", ErrKeyNotFound
	}
	if entry.expired(time.Now()) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return "", ErrKeyNotFound
	}
	return entry.value, nil
}

func (m *MemoryRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryRepository) IsNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// Sweep removes every expired entry and returns how many were dropped.
func (m *MemoryRepository) Sweep() int {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, entry := range m.entries {
		if entry.expired(now) {
			delete(m.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of live entries, expired or not.
func (m *MemoryRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
