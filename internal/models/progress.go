package models

import (
	"sort"
	"sync"
)

// ModuleProgress tracks completed learning modules and the one-time bonus
// unlocked once threshold modules are done.
type ModuleProgress struct {
	mu        sync.RWMutex
	completed map[string]struct{}
	claimed   bool
	threshold int
}

func NewModuleProgress(threshold int) *ModuleProgress {
	if threshold <= 0 {
		threshold = 5
	}
	return &ModuleProgress{
		completed: make(map[string]struct{}),
		threshold: threshold,
	}
}

// Complete records id and reports whether it was new.
func (m *ModuleProgress) Complete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.completed[id]; ok {
		return false
	}
	m.completed[id] = struct{}{}
	return true
}

func (m *ModuleProgress) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.completed)
}

func (m *ModuleProgress) Threshold() int {
	return m.threshold
}

func (m *ModuleProgress) IsCompleted(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.completed[id]
	return ok
}

func (m *ModuleProgress) Completed() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.completed))
	for id := range m.completed {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (m *ModuleProgress) BonusAvailable() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.claimed && len(m.completed) >= m.threshold
}

func (m *ModuleProgress) IsClaimed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.claimed
}

// ClaimBonus flips the claimed flag once. Later completions never re-open it.
func (m *ModuleProgress) ClaimBonus() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.claimed || len(m.completed) < m.threshold {
		return false
	}
	m.claimed = true
	return true
}
