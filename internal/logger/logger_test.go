package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLoggerJSON(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")

	var buf bytes.Buffer
	l := NewZerologLogger(&buf, "test")
	l.Debugf("hidden %d", 1)
	l.Infof("moved %d", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "moved 2", entry["message"])
}

func TestZerologLoggerMethods(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("LOG_LEVEL", "debug")

	var buf bytes.Buffer
	l := NewZerologLogger(&buf, "test")
	l.Debugf("debug %d", 1)
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")

	out := buf.String()
	for _, msg := range []string{"debug 1", "info test", "warn", "error"} {
		assert.Contains(t, out, msg)
	}
}

func TestNew(t *testing.T) {
	assert.NotNil(t, New("main"))
}
