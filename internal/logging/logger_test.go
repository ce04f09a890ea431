package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level     Level
		wantError bool
		wantWarn  bool
		wantInfo  bool
		wantDebug bool
	}{
		{LevelError, true, false, false, false},
		{LevelWarn, true, true, false, false},
		{LevelInfo, true, true, true, false},
		{LevelDebug, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, tt.level, "test")

			logger.Error("error message")
			logger.Warn("warn message")
			logger.Info("info message")
			logger.Debug("debug message")

			out := buf.String()
			if got := strings.Contains(out, "error message"); got != tt.wantError {
				t.Errorf("error logged = %v, want %v", got, tt.wantError)
			}
			if got := strings.Contains(out, "warn message"); got != tt.wantWarn {
				t.Errorf("warn logged = %v, want %v", got, tt.wantWarn)
			}
			if got := strings.Contains(out, "info message"); got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v", got, tt.wantInfo)
			}
			if got := strings.Contains(out, "debug message"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestFormatCarriesLevelAndComponent(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, LevelInfo, "stress").Infof("ops=%d", 42)

	out := buf.String()
	if !strings.Contains(out, "INFO [stress] ops=42") {
		t.Errorf("unexpected line %q", out)
	}
}

func TestLiteralPercentWithoutArgs(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, LevelInfo, "x").Info("100% done")
	if !strings.Contains(buf.String(), "100% done") {
		t.Errorf("message mangled: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"error": LevelError, "WARN": LevelWarn, "": LevelInfo, "Debug": LevelDebug} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestDiscard(t *testing.T) {
	Discard.Errorf("%d", 1)
	Discard.Info("nothing")
}
