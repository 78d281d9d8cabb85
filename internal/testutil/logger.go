package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
)

// NopLogger returns a logger that discards all output.
// Use this in tests to avoid log noise.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// LogCapture records JSON log lines at debug level and above
type LogCapture struct {
	buf bytes.Buffer
}

// CaptureLogger returns a logger whose records can be inspected
func CaptureLogger() (*slog.Logger, *LogCapture) {
	c := &LogCapture{}
	logger := slog.New(slog.NewJSONHandler(&c.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, c
}

// Records returns every captured record with the given message
func (c *LogCapture) Records(msg string) []map[string]any {
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(c.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		if rec["msg"] == msg {
			out = append(out, rec)
		}
	}
	return out
}
