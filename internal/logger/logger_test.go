package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter(&buf, "debug", "json")
	t.Cleanup(func() { Initialize("info", "text") })

	Ledger("donation_recorded", "donation_id", 4, "hours", 8)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "donation_recorded", entry["ledger_event"])
	assert.EqualValues(t, 8, entry["hours"])
}

func TestInitializeWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter(&buf, "warn", "text")
	t.Cleanup(func() { Initialize("info", "text") })

	Info("hidden")
	DatabaseCall("SELECT", "users")
	assert.Empty(t, buf.String())

	HTTPRequest("POST", "/api/donations", 500, 12*time.Millisecond)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "path=/api/donations")
}
