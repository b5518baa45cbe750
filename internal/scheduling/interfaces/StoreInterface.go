package interfaces

import (
	"context"
	"studynexus/internal/models"
)

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
}

// StoreInterface persists the durable snapshot. Load returns nil without
// error when nothing has been saved yet.
type StoreInterface interface {
	Save(ctx context.Context, storage *models.Storage) error
	Load(ctx context.Context) (*models.Storage, error)
	Close() error
}
