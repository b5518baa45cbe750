package models

import "time"

const StorageVersion = 1

// Storage is the only state that survives a restart.
type Storage struct {
	Version            int       `json:"version"`
	HasConnectedBefore bool      `json:"has_connected_before"`
	UpdatedAt          time.Time `json:"updated_at"`
}
