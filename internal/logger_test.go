package internal

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	// WHY: Verifies all documented log level strings map to the correct slog.Level,
	// including the "warn"/"warning" alias and the default fallback for unknown input.
	// "uppercase_not_recognized" documents that the function is case-sensitive.
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "warning", input: "warning", want: slog.LevelWarn},
		{name: "warn_alias", input: "warn", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "unknown_defaults_info", input: "trace", want: slog.LevelInfo},
		{name: "uppercase_not_recognized", input: "DEBUG", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseLogLevel(tt.input)
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetupLoggerTo(t *testing.T) {
	// WHY: Messages below the configured level must be suppressed; the
	// text handler must carry structured attributes through.
	var buf bytes.Buffer
	SetupLoggerTo(&buf, "warn")

	slog.Info("should not appear")
	slog.Warn("catalog problem", "objects", 3)

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(out, "catalog problem") || !strings.Contains(out, "objects=3") {
		t.Errorf("warn message missing or unstructured: %q", out)
	}
}
