package providers

import (
	"os"
	"path/filepath"
	"studynexus/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogTypeByRequestType_POST(t *testing.T) {
	assert.Equal(t, TypePost, GetLogTypeByRequestType("POST"))
}

func TestGetLogTypeByRequestType_GET(t *testing.T) {
	assert.Equal(t, TypeGet, GetLogTypeByRequestType("GET"))
}

func TestGetLogTypeByRequestType_Other(t *testing.T) {
	assert.Equal(t, TypeGet, GetLogTypeByRequestType("PUT"))
	assert.Equal(t, TypeGet, GetLogTypeByRequestType("DELETE"))
}

func TestNewLogProvider_CreatesLogFiles(t *testing.T) {
	dir := t.TempDir()
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   dir,
		},
	}

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)

	logger.Infof(TypeApp, "test message")
	logger.Debugf(TypeGet, "get message")
	logger.Warnf(TypePost, "post message")
	logger.Infof(TypeLedger, "stake %s", "200")
	logger.Errorf(TypeAI, "summary failed")
	logger.Close()

	for _, name := range []string{"app.log", "get.log", "post.log", "ledger.log", "ai.log"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "ledger.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "stake 200")

	// debug is below the configured level
	data, err = os.ReadFile(filepath.Join(dir, "get.log"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestNewLogProvider_InvalidDir(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/nonexistent/directory/path",
		},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "verbose",
			Mode:  0644,
			Dir:   t.TempDir(),
		},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}
