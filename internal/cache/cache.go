package cache

import (
	"context"
	"sync"
	"time"
)

// Repository кэш результатов чистых расчетов
type Repository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

type entry struct {
	value     string
	expiresAt time.Time
}

// sweepInterval минимальный интервал между очистками просроченных записей
const sweepInterval = time.Minute

// Memory кэш в памяти процесса; нулевой ttl означает бессрочное хранение
type Memory struct {
	mu        sync.Mutex
	data      map[string]entry
	now       func() time.Time
	lastSweep time.Time
}

// NewMemory создает пустой кэш в памяти
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.data[key]
	if !ok {
		return "", false
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		delete(m.data, key)
		return "", false
	}
	return e.value, true
}

func (m *Memory) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) >= sweepInterval {
		m.sweep(now)
	}

	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	m.data[key] = e
	return nil
}

func (m *Memory) sweep(now time.Time) {
	for key, e := range m.data {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(m.data, key)
		}
	}
	m.lastSweep = now
}
