package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONWithService(t *testing.T) {
	out := filepath.Join(t.TempDir(), "hotel.log")

	log, err := New("hotel-test", "info", out)
	require.NoError(t, err)
	log.Infow("room saved", "room", "101")
	log.Debugw("dropped at info level")
	require.NoError(t, log.Sync())

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"service":"hotel-test"`)
	assert.Contains(t, string(raw), `"room":"101"`)
	assert.NotContains(t, string(raw), "dropped at info level")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("hotel-test", "loud", "stderr")
	assert.Error(t, err)
}
