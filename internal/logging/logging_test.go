package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"Warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"loud", LevelWarn, true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseLevel(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelWarn, &buf)

	log.Debug("hidden %d", 1)
	log.Info("hidden too")
	log.Warn("shown %s", "warning")
	log.Warnw("row skipped", "date", "2024-01-01T00:00:00")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-level messages written: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "shown warning") {
		t.Errorf("missing warning: %q", out)
	}
	if !strings.Contains(out, `"date": "2024-01-01T00:00:00"`) {
		t.Errorf("missing structured field: %q", out)
	}

	buf.Reset()
	log.SetLevel(LevelDebug)
	log.Debugw("evaluated", "rows", 3)
	if !strings.Contains(buf.String(), "DEBUG") {
		t.Errorf("SetLevel did not lower the threshold: %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("nothing %d", 1)
	log.Warnw("nothing")
}

func TestLevelString(t *testing.T) {
	tests := map[Level]string{
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
		Level(9):   "UNKNOWN",
	}
	for l, want := range tests {
		if got := l.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", l, got, want)
		}
	}
}
