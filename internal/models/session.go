package models

import "sync"

type StudyMaterial struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type PastSession struct {
	ID                string `json:"id"`
	Topic             string `json:"topic"`
	Date              string `json:"date"`
	DurationInSeconds int    `json:"durationInSeconds"`
	Transcript        string `json:"transcript"`
	Summary           string `json:"summary,omitempty"`
	AudioRecordingURL string `json:"audioRecordingUrl,omitempty"`
}

// SessionHistory keeps completed sessions newest first. Sessions are never
// removed; only their summary changes after creation.
type SessionHistory struct {
	mu       sync.RWMutex
	sessions []PastSession
}

func NewSessionHistory() *SessionHistory {
	return &SessionHistory{}
}

func (h *SessionHistory) Add(s PastSession) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions = append([]PastSession{s}, h.sessions...)
}

func (h *SessionHistory) Get(id string) (PastSession, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.sessions {
		if s.ID == id {
			return s, true
		}
	}
	return PastSession{}, false
}

func (h *SessionHistory) UpdateSummary(id, summary string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.sessions {
		if h.sessions[i].ID == id {
			h.sessions[i].Summary = summary
			return true
		}
	}
	return false
}

// List returns up to limit sessions, all of them when limit <= 0.
func (h *SessionHistory) List(limit int) []PastSession {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := len(h.sessions)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]PastSession, n)
	copy(out, h.sessions[:n])
	return out
}

func (h *SessionHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
