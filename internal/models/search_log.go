package models

import (
	"strings"
	"sync"
)

const maxRecentSearches = 5

// SearchLog keeps the recent search queries, most-recent-first, capped at
// maxRecentSearches. Re-issuing a query moves it to the front instead of
// duplicating it.
type SearchLog struct {
	mu      sync.RWMutex
	entries []string
}

func NewSearchLog() *SearchLog {
	return &SearchLog{
		entries: make([]string, 0, maxRecentSearches),
	}
}

// Add records a query. Blank and whitespace-only queries are ignored.
func (l *SearchLog) Add(query string) {
	if strings.TrimSpace(query) == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	filtered := make([]string, 0, len(l.entries)+1)
	filtered = append(filtered, query)
	for _, e := range l.entries {
		if e != query {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) > maxRecentSearches {
		filtered = filtered[:maxRecentSearches]
	}
	l.entries = filtered
}

// Entries returns a copy of the log, most-recent-first.
func (l *SearchLog) Entries() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make([]string, len(l.entries))
	copy(result, l.entries)
	return result
}

func (l *SearchLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// PutData replaces the log with restored state, re-applying the cap.
func (l *SearchLog) PutData(entries []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(entries) > maxRecentSearches {
		entries = entries[:maxRecentSearches]
	}
	l.entries = make([]string, len(entries))
	copy(l.entries, entries)
}

// GetData returns the log for persistence.
func (l *SearchLog) GetData() []string {
	return l.Entries()
}
