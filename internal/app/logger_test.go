package app

import (
	"log/slog"
	"testing"

	"github.com/mkolosov/noteflow-srs/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "debug", Format: "json"})
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	if !logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("debug level should be enabled")
	}

	logger = NewLogger(config.LogConfig{Level: "error", Format: "text"})
	if logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("info should be disabled at error level")
	}
	if slog.Default() != logger {
		t.Error("NewLogger must install itself as the default")
	}
}

func TestFuzzSource(t *testing.T) {
	if got := fuzzSource(config.SRSConfig{DisableFuzz: true, FuzzSeed: 42}); got != nil {
		t.Error("disabled fuzz must return nil")
	}

	a := fuzzSource(config.SRSConfig{FuzzSeed: 42})
	b := fuzzSource(config.SRSConfig{FuzzSeed: 42})
	if a == nil || b == nil {
		t.Fatal("enabled fuzz must return a source")
	}
	for i := 0; i < 10; i++ {
		if a.Int63() != b.Int63() {
			t.Fatal("equal seeds must produce equal streams")
		}
	}

	if fuzzSource(config.SRSConfig{}) == nil {
		t.Error("fuzz defaults to on with a wall-clock seed")
	}
}
