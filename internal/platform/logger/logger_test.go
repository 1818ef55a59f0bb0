package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestStdLogger_TextFormat_SortedKeysAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatText, App: "catalog", Output: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"key": "breeds"}).Info("cache hit", map[string]any{"count": 3})

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry should be filtered, got %q", out)
	}
	if !strings.HasPrefix(out, "app=catalog count=3 key=breeds level=info msg=cache hit") {
		t.Fatalf("unexpected text line: %q", out)
	}
}

func TestStdLogger_JSONFormat_StringifiesErrors(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, Output: &buf})

	l.Error("fetch failed", map[string]any{"err": errors.New("boom")})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if entry["err"] != "boom" || entry["level"] != "error" || entry["msg"] != "fetch failed" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
}

func TestZapBackend_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatJSON, Backend: BackendZap, App: "catalog", Output: &buf})

	l.Info("ignored", nil)
	l.Warn("cache write failed", map[string]any{"key": "breeds"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if entry["app"] != "catalog" || entry["key"] != "breeds" || entry["level"] != "warn" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
}

func TestParse(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("nope") != Info {
		t.Fatalf("ParseLevel mismatch")
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("ParseFormat mismatch")
	}
	if ParseBackend("zap") != BackendZap || ParseBackend("") != BackendStd {
		t.Fatalf("ParseBackend mismatch")
	}
}
