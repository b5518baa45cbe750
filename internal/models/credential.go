package models

import "sync"

type NFTCredential struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	ImageURL        string `json:"imageUrl"`
	Date            string `json:"date"`
	TransactionHash string `json:"transactionHash"`
	IsOfficial      bool   `json:"isOfficial,omitempty"`
}

// CredentialCollection is an append-only set of credentials keyed by ID.
type CredentialCollection struct {
	mu    sync.RWMutex
	items []NFTCredential
}

func NewCredentialCollection() *CredentialCollection {
	return &CredentialCollection{}
}

func (c *CredentialCollection) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexOf(id) >= 0
}

func (c *CredentialCollection) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Append adds nft at the end. It returns false when the ID is already held.
func (c *CredentialCollection) Append(nft NFTCredential) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(nft.ID) >= 0 {
		return false
	}
	c.items = append(c.items, nft)
	return true
}

// Prepend adds nft at the front. It returns false when the ID is already held.
func (c *CredentialCollection) Prepend(nft NFTCredential) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(nft.ID) >= 0 {
		return false
	}
	c.items = append([]NFTCredential{nft}, c.items...)
	return true
}

func (c *CredentialCollection) List() []NFTCredential {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]NFTCredential, len(c.items))
	copy(out, c.items)
	return out
}

func (c *CredentialCollection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *CredentialCollection) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
