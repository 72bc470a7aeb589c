package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		l, err := New(nil)
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "admin.log")
		l, err := New(&Config{Level: "debug", Format: "json", Output: path})
		require.NoError(t, err)
		l.Info("hello")
		require.NoError(t, l.Sync())
	})
}

func TestNewWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&Config{Level: "info", Format: "json"}, &buf)

	l.Info("saved", zap.String("entity", "supplier"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "saved", entry["msg"])
	assert.Equal(t, "supplier", entry["entity"])
	assert.Equal(t, "info", entry["level"])
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	base := NewWriter(&Config{Level: "debug", Format: "json"}, &buf)

	t.Run("FromContext falls back to nop", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})

	t.Run("request id is attached", func(t *testing.T) {
		buf.Reset()
		ctx, _ := WithRequestID(context.Background(), base, "req-1")
		assert.Equal(t, "req-1", GetRequestID(ctx))

		L(ctx).Info("fetching")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "req-1", entry["request_id"])
	})

	t.Run("no trace id without span", func(t *testing.T) {
		assert.Empty(t, GetTraceID(context.Background()))
	})
}
