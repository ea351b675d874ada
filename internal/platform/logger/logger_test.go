package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func fixedNow() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLogger_Text_SortedKeys(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatText, App: "bird-service", Output: &buf})
	l.now = fixedNow

	l.Info("saved", map[string]any{"bird_id": "b1"})

	want := "app=bird-service bird_id=b1 level=info msg=saved ts=2026-01-02T03:04:05Z\n"
	if buf.String() != want {
		t.Fatalf("unexpected line:\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestLogger_JSON_WithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, Output: &buf})

	child := l.With(map[string]any{"request_id": "r-1", " ": "ignored"})
	child.Debug("hello", map[string]any{"n": 1})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json line %q: %v", buf.String(), err)
	}
	if entry["request_id"] != "r-1" || entry["msg"] != "hello" || entry["level"] != "debug" {
		t.Fatalf("unexpected entry %#v", entry)
	}
	if _, ok := entry[" "]; ok {
		t.Fatalf("expected blank key to be dropped")
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf})

	l.Info("skip", nil)
	l.Warn("keep", nil)

	if strings.Contains(buf.String(), "skip") || !strings.Contains(buf.String(), "keep") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestNop_WritesNothing(t *testing.T) {
	l := Nop()
	l.Error("boom", map[string]any{"x": 1})
	l.With(map[string]any{"a": "b"}).Error("boom", nil)
}
