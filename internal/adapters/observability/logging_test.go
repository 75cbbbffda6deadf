package observability_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"hotel_packages/internal/adapters/observability"
)

func TestNewLoggerTo_JSONInProd(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLoggerTo(&buf, "prod", "")
	l.Info().Int("packages", 3).Msg("generated")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if line["message"] != "generated" || line["packages"] != float64(3) {
		t.Fatalf("unexpected fields: %+v", line)
	}
}

func TestNewLoggerTo_Level(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLoggerTo(&buf, "prod", "warn")
	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Fatalf("level filter not applied: %q", out)
	}
}
