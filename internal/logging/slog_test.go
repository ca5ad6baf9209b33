package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

// decode returns one map per JSON record written to buf.
func decode(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		rec := map[string]any{}
		if err := dec.Decode(&rec); err != nil {
			t.Fatalf("decode record: %v", err)
		}
		records = append(records, rec)
	}
	return records
}

func TestSlogLogger_EachLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, "debug")
	ctx := context.Background()

	log.Debug(ctx, "query", "sql_ms", 3)
	log.Info(ctx, "repository created", "repository", 7)
	log.Warn(ctx, "rejected token", "method", "/x")
	log.Error(ctx, "call failed", "error", "boom")

	want := []struct{ level, msg, key string }{
		{"DEBUG", "query", "sql_ms"},
		{"INFO", "repository created", "repository"},
		{"WARN", "rejected token", "method"},
		{"ERROR", "call failed", "error"},
	}

	records := decode(t, &buf)
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i, w := range want {
		rec := records[i]
		if rec["level"] != w.level || rec["msg"] != w.msg {
			t.Fatalf("record %d = %v, want level %s msg %q", i, rec, w.level, w.msg)
		}
		if _, ok := rec[w.key]; !ok {
			t.Fatalf("record %d lacks %q: %v", i, w.key, rec)
		}
	}
}

func TestSlogLogger_WithKeepsParentUntouched(t *testing.T) {
	var buf bytes.Buffer
	parent := NewJSONLogger(&buf, "info")
	child := parent.With("request_id", "r-1", "module", "grpc_server")
	ctx := context.Background()

	child.Info(ctx, "call served")
	parent.Info(ctx, "plain")

	records := decode(t, &buf)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0]["request_id"] != "r-1" || records[0]["module"] != "grpc_server" {
		t.Fatalf("child record lacks its attributes: %v", records[0])
	}
	if _, ok := records[1]["request_id"]; ok {
		t.Fatalf("parent record picked up child attributes: %v", records[1])
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewJSONLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, "warn")
	ctx := context.Background()

	log.Info(ctx, "hidden")
	log.Warn(ctx, "shown", "repository", 7)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record must be filtered at warn level:\n%s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"repository":7`) {
		t.Fatalf("expected JSON warn record, got:\n%s", out)
	}
}
