package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, false)
	log.Debug("hidden")
	assert.Zero(t, buf.Len(), "debug is suppressed outside development")

	log = NewWithWriter(&buf, true)
	log.Debug("directory loaded", "countries", 27)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "directory loaded", entry["msg"])
	assert.Equal(t, "write-your-mep", entry["service"])
	assert.EqualValues(t, 27, entry["countries"])
}
