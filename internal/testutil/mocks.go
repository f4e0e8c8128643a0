package testutil

import (
	"strconv"
	"sync"
	"time"

	"fcd/internal/providers"
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

// MockNotifier implements providers.NotifierInterface and records calls.
type MockNotifier struct {
	mu            sync.Mutex
	Notifications []Notification
}

type Notification struct {
	Kind   providers.NotificationKind
	Title  string
	Detail string
}

func (m *MockNotifier) Notify(kind providers.NotificationKind, title string, detail string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notifications = append(m.Notifications, Notification{Kind: kind, Title: title, Detail: detail})
}

// SequenceIdentity hands out deterministic ids: id-1, id-2, ...
type SequenceIdentity struct {
	mu sync.Mutex
	n  int
}

func (s *SequenceIdentity) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return "id-" + strconv.Itoa(s.n)
}

// FixedClock returns a configurable time, advancing by Step on every call so
// createdAt stays strictly increasing.
type FixedClock struct {
	mu   sync.Mutex
	Time time.Time
	Step time.Duration
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.Time
	c.Time = c.Time.Add(c.Step)
	return now
}

// MemorySessions implements providers.SessionProviderInterface in a map.
type MemorySessions struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{data: make(map[string][]byte)}
}

func (m *MemorySessions) Get(token string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[token]
	return v, ok
}

func (m *MemorySessions) Set(token string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[token] = value
}

func (m *MemorySessions) Del(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, token)
}
