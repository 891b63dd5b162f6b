package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.WarnLevel)
	log.Info().Msg("hidden")
	log.Warn().Int("depth", 3).Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info event written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "depth") {
		t.Fatalf("missing warn event: %q", out)
	}
	if !strings.Contains(out, "logx_test.go:") {
		t.Fatalf("caller not shortened: %q", out)
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("CHESSBOT_LOG_TEST", "debug")
	if got := LevelFromEnv("CHESSBOT_LOG_TEST", zerolog.InfoLevel); got != zerolog.DebugLevel {
		t.Fatalf("got %v want debug", got)
	}
	t.Setenv("CHESSBOT_LOG_TEST", "loud")
	if got := LevelFromEnv("CHESSBOT_LOG_TEST", zerolog.InfoLevel); got != zerolog.InfoLevel {
		t.Fatalf("got %v want fallback info", got)
	}
}
