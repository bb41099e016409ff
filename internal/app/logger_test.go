package app

import (
	"context"
	"log/slog"
	"testing"
)

func TestLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, c := range cases {
		if got := logLevel(&Config{LogLevel: c.in}); got != c.want {
			t.Fatalf("logLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	if got := logLevel(nil); got != slog.LevelInfo {
		t.Fatalf("nil config must default to info, got %v", got)
	}
}

func TestNewLoggerHonorsLevel(t *testing.T) {
	ctx := context.Background()
	logger := NewLogger(&Config{LogLevel: "error"})
	if logger.Enabled(ctx, slog.LevelInfo) {
		t.Fatalf("info must be suppressed at error level")
	}
	if !logger.Enabled(ctx, slog.LevelError) {
		t.Fatalf("error must be enabled at error level")
	}
}
