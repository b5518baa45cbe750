package testutil

import (
	"context"
	"studynexus/internal/models"
	"studynexus/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level on channel t.
func (m *MockLogger) Count(level string, t providers.TypeEnum) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level && e.Type == t {
			n++
		}
	}
	return n
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu               sync.Mutex
	Requests         int
	CacheHits        int
	CacheMisses      int
	PersistenceCalls int
	AccrualTicks     int
	LedgerOps        map[string]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{LedgerOps: make(map[string]int)}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceCalls++
}
func (m *MockMetrics) IncLedgerOps(op string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := "ok"
	if !ok {
		result = "refused"
	}
	m.LedgerOps[op+":"+result]++
}
func (m *MockMetrics) IncAccrualTicks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AccrualTicks++
}

func (m *MockMetrics) Ticks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.AccrualTicks
}

// MockTextGenerator implements providers.TextGeneratorInterface.
type MockTextGenerator struct {
	SummarizeFn func(ctx context.Context, transcript string) (string, error)
	ExtractFn   func(ctx context.Context, mimeType string, data []byte) (string, error)
}

func (m *MockTextGenerator) Summarize(ctx context.Context, transcript string) (string, error) {
	if m.SummarizeFn != nil {
		return m.SummarizeFn(ctx, transcript)
	}
	return "summary: " + transcript, nil
}

func (m *MockTextGenerator) ExtractText(ctx context.Context, mimeType string, data []byte) (string, error) {
	if m.ExtractFn != nil {
		return m.ExtractFn(ctx, mimeType, data)
	}
	return string(data), nil
}

// MockStore implements interfaces.StoreInterface in memory.
type MockStore struct {
	mu        sync.Mutex
	Stored    *models.Storage
	SaveErr   error
	LoadErr   error
	SaveCalls int
}

func (m *MockStore) Save(_ context.Context, storage *models.Storage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	cp := *storage
	m.Stored = &cp
	return nil
}

func (m *MockStore) Load(_ context.Context) (*models.Storage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Stored == nil {
		return nil, nil
	}
	cp := *m.Stored
	return &cp, nil
}

func (m *MockStore) Close() error { return nil }

func (m *MockStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SaveCalls
}
