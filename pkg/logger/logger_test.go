package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}
	if Named("ranking") == nil {
		t.Fatal("named logger is nil")
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	SetOutput(&buf)
	if err := SetFormat(FormatJSON); err != nil {
		t.Fatalf("set format: %v", err)
	}
	defer func() {
		_ = SetFormat(FormatText)
	}()

	Named("llm").Warn(context.Background(), "refinement failed",
		String("provider", "openai"),
		Int("attempt", 2),
		Bool("fallback", true),
		Duration("elapsed", 1500*time.Millisecond),
		Error(errors.New("status 503")),
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not json: %v: %q", err, buf.String())
	}
	if entry["msg"] != "refinement failed" || entry["logger"] != "llm" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["error"] != "status 503" || entry["fallback"] != true {
		t.Fatalf("unexpected fields: %v", entry)
	}
	if _, ok := entry["source"]; !ok {
		t.Fatal("missing source field")
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	SetOutput(&buf)

	if err := SetLevelString("warn"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	Get().Info(context.Background(), "hidden")
	Get().Warn(context.Background(), "shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("level filter not applied: %q", buf.String())
	}

	if err := SetLevelString("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if err := SetFormat("xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	_ = SetLevelString("info")
}

func TestNop(t *testing.T) {
	l := Nop().Named("x")
	l.Info(context.Background(), "discarded", String("k", "v"))
	l.Error(context.Background(), "discarded")
}
