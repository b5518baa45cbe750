package scheduling

import (
	"context"
	"os"
	"studynexus/internal/models"
	"studynexus/internal/providers"
	"studynexus/internal/scheduling/interfaces"
	"studynexus/internal/structures"
)

// FileManager stores the snapshot as zstd-compressed JSON, replacing the file
// atomically through a temporary sibling.
type FileManager struct {
	path       string
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		path:       conf.Persistence.FilePath,
		compressor: compressor,
		logger:     logger,
	}
}

func (f *FileManager) Save(_ context.Context, storage *models.Storage) error {
	data, err := encodeStorage(f.compressor, storage)
	if err != nil {
		return err
	}

	tmpFile := f.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, f.path)
}

func (f *FileManager) Load(_ context.Context) (*models.Storage, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return decodeStorage(f.compressor, f.logger, data)
}

func (f *FileManager) Close() error {
	return nil
}
