package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func withStderr(t *testing.T, w io.Writer) {
	t.Helper()
	prev := stderr
	stderr = w
	t.Cleanup(func() {
		stderr = prev
		Init(LevelInfo, nil)
	})
}

func TestPrettyHandler_Structural(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{Level: LevelDebug}
	l := slog.New(NewPrettyHandler(&buf, opts, false))

	t.Run("WithAttrs", func(t *testing.T) {
		buf.Reset()
		l.With("input", "list.txt").Info("loaded identifiers", "count", 3)

		output := buf.String()
		if !strings.Contains(output, "input=list.txt") {
			t.Errorf("output missing persistent attr: %q", output)
		}
		if !strings.Contains(output, "count=3") {
			t.Errorf("output missing record attr: %q", output)
		}
	})

	t.Run("WithGroup", func(t *testing.T) {
		buf.Reset()
		l.WithGroup("catalog").With("entries", 2).Info("built", "dropped", 1)

		output := buf.String()
		if !strings.Contains(output, "catalog.entries=2") {
			t.Errorf("output missing grouped persistent attr: %q", output)
		}
		if !strings.Contains(output, "catalog.dropped=1") {
			t.Errorf("output missing grouped record attr: %q", output)
		}
	})

	t.Run("QuotesAmbiguousStrings", func(t *testing.T) {
		buf.Reset()
		l.Debug("dropped identifier", "identifier", " en")

		output := buf.String()
		if !strings.Contains(output, `identifier=" en"`) {
			t.Errorf("expected quoted identifier, got %q", output)
		}
	})

	t.Run("LevelFiltering", func(t *testing.T) {
		buf.Reset()
		quiet := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: LevelWarn}, false))
		quiet.Info("hidden")
		if buf.Len() != 0 {
			t.Errorf("expected info to be filtered, got %q", buf.String())
		}
	})
}

func TestLevelFor(t *testing.T) {
	if LevelFor(true) != LevelDebug {
		t.Fatalf("debug flag should select debug level")
	}
	if LevelFor(false) != LevelInfo {
		t.Fatalf("default should be info level")
	}
}

func TestInit_NoColorWhenNotTTY(t *testing.T) {
	var out bytes.Buffer
	withStderr(t, &out)

	prevIsTerminal := isTerminal
	isTerminal = func(_ int) bool { return true }
	defer func() { isTerminal = prevIsTerminal }()

	Init(LevelInfo, nil)
	Info("test message", "key", "value")

	if strings.Contains(out.String(), "\033[") {
		t.Fatalf("unexpected ANSI codes in output: %q", out.String())
	}
	if !strings.Contains(out.String(), "test message") {
		t.Fatalf("missing message: %q", out.String())
	}
}

func TestInit_LogFileReceivesJSONL(t *testing.T) {
	var console, logFile bytes.Buffer
	withStderr(t, &console)

	Init(LevelDebug, &logFile)
	Debug("dropped identifier", "identifier", "zz")
	Warn("Symbols are not unique", "duplicates", 1)

	lines := strings.Split(strings.TrimSpace(logFile.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 JSONL records, got %d: %q", len(lines), logFile.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("invalid JSONL record: %v", err)
	}
	if rec["msg"] != "dropped identifier" || rec["identifier"] != "zz" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if !strings.Contains(console.String(), "dropped identifier") {
		t.Fatalf("console handler did not receive record: %q", console.String())
	}
}
