package layout

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLoggerRecordsPageBreaks(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	pc := newPageCollector()
	pc.ensureSpace(ContentHeight + 1)

	out := buf.String()
	if !strings.Contains(out, "page break") || !strings.Contains(out, "page=2") {
		t.Fatalf("expected page break record, got %q", out)
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("SetLogger(nil) should restore the silent logger")
	}
}
