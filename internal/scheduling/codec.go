package scheduling

import (
	"fmt"
	"studynexus/internal/models"
	"studynexus/internal/providers"
	"studynexus/internal/scheduling/interfaces"

	json "github.com/goccy/go-json"
)

func encodeStorage(compressor interfaces.CompressorInterface, storage *models.Storage) ([]byte, error) {
	jsonData, err := json.Marshal(storage)
	if err != nil {
		return nil, err
	}
	return compressor.Compress(jsonData)
}

func decodeStorage(compressor interfaces.CompressorInterface, logger providers.Logger, data []byte) (*models.Storage, error) {
	decompressed, err := compressor.Decompress(data)
	if err != nil {
		return nil, err
	}

	var storage models.Storage
	if err := json.Unmarshal(decompressed, &storage); err != nil {
		return nil, err
	}
	switch {
	case storage.Version > models.StorageVersion:
		return nil, fmt.Errorf("snapshot version %d is newer than supported %d", storage.Version, models.StorageVersion)
	case storage.Version == 0:
		logger.Warnf(providers.TypeApp, "Unversioned snapshot found, migrating to version %d", models.StorageVersion)
		storage.Version = models.StorageVersion
	}
	return &storage, nil
}
