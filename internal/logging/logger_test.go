package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestFileName(t *testing.T) {
	day := time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)
	if got := FileName(day); got != "tagsift-2026-03-09.log" {
		t.Errorf("FileName = %q", got)
	}
}

func TestInitWritesToDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	if err := Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Info("toggled", "tag", "peynir")
	Close()
	defer func() { Logger = nil }()

	data, err := os.ReadFile(filepath.Join(dir, FileName(time.Now())))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"tagsift started", "toggled", "tag=peynir", "tagsift shutting down"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, log.WarnLevel)
	defer func() { Logger = nil }()

	Debug("hidden debug")
	Info("hidden info")
	Warn("shown warn")
	Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-level messages leaked: %s", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("expected warn and error lines: %s", out)
	}
}

func TestNilLoggerSafe(t *testing.T) {
	Logger = nil
	Info("nothing")
	Debug("nothing")
	Warn("nothing")
	Error("nothing")
	if WithPrefix("x") == nil {
		t.Error("WithPrefix should never return nil")
	}
}
