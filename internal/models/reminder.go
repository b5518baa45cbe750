package models

import (
	"sort"
	"sync"
	"time"
)

type Reminder struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	DateTime time.Time `json:"dateTime"`
	Notified bool      `json:"notified"`
}

// ReminderList is kept sorted ascending by DateTime.
type ReminderList struct {
	mu    sync.RWMutex
	items []Reminder
}

func NewReminderList() *ReminderList {
	return &ReminderList{}
}

func (r *ReminderList) Add(rem Reminder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := sort.Search(len(r.items), func(i int) bool {
		return r.items[i].DateTime.After(rem.DateTime)
	})
	r.items = append(r.items, Reminder{})
	copy(r.items[idx+1:], r.items[idx:])
	r.items[idx] = rem
}

func (r *ReminderList) List() []Reminder {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Reminder, len(r.items))
	copy(out, r.items)
	return out
}

func (r *ReminderList) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
