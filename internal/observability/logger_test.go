package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    zapcore.Level
		wantErr bool
	}{
		{name: "", want: zapcore.WarnLevel},
		{name: "debug", want: zapcore.DebugLevel},
		{name: "info", want: zapcore.InfoLevel},
		{name: "error", want: zapcore.ErrorLevel},
		{name: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for level %q", tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewLoggerTo_WritesECSJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLoggerTo(&buf, "info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log.Info("alerts written", zap.Int("rules", 3))
	_ = log.Sync()

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, line)
	}
	if entry["message"] != "alerts written" {
		t.Errorf("expected ECS message key, got %v", entry)
	}
	if entry["log.level"] != "INFO" {
		t.Errorf("expected log.level INFO, got %v", entry["log.level"])
	}
	if entry["rules"] != float64(3) {
		t.Errorf("expected rules field 3, got %v", entry["rules"])
	}
}

func TestNewLoggerTo_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLoggerTo(&buf, "warn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log.Debug("hidden")
	log.Info("hidden too")
	_ = log.Sync()

	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %q", buf.String())
	}
}

func TestNewLoggerTo_InvalidLevel(t *testing.T) {
	if _, err := NewLoggerTo(&bytes.Buffer{}, "verbose"); err == nil {
		t.Fatal("expected error for invalid level")
	}
}
