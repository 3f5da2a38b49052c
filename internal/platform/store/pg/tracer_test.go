package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"select 1", "select 1"},
		{"INSERT INTO predictions\n\t(id, category)\n\tVALUES ($1,$2)", "INSERT INTO predictions (id, category) VALUES ($1,$2)"},
		{"SELECT category,\r\n COUNT(*)  FROM  predictions", "SELECT category, COUNT(*) FROM predictions"},
		{"", ""},
	}
	for i, c := range cases {
		if got := compact(c.in); got != c.want {
			t.Fatalf("case %d: compact(%q)=%q want %q", i, c.in, got, c.want)
		}
	}
}

func TestTracer_InfoAndWarnPaths(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := Tracer(zerolog.New(&buf))

	type logLine struct {
		Level     string  `json:"level"`
		ElapsedMS float64 `json:"elapsed_ms"`
		Slow      bool    `json:"slow"`
		SQL       string  `json:"sql"`
		Error     string  `json:"error"`
		Message   string  `json:"message"`
		Component string  `json:"component"`
	}

	ev := QueryEvent{
		SQL:       "SELECT *\n FROM predictions\tWHERE user_id = $1",
		Args:      []any{"u-1"},
		ElapsedUS: 2500,
		Err:       errors.New("boom"),
	}
	tr.OnQuery(context.Background(), ev)

	var line logLine
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("unmarshal: %v raw=%s", err, buf.String())
	}
	if line.Level != "info" || line.Slow {
		t.Fatalf("fast query should log info: %+v", line)
	}
	if line.ElapsedMS != 2.5 {
		t.Fatalf("elapsed_ms=%v want 2.5", line.ElapsedMS)
	}
	if line.SQL != "SELECT * FROM predictions WHERE user_id = $1" {
		t.Fatalf("sql not compacted: %q", line.SQL)
	}
	if line.Error != "boom" || line.Message != "pg query" || line.Component != "pg" {
		t.Fatalf("fields wrong: %+v", line)
	}

	// slow queries escalate to warn
	buf.Reset()
	ev.Slow = true
	tr.OnQuery(context.Background(), ev)
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("unmarshal warn: %v", err)
	}
	if line.Level != "warn" || !line.Slow {
		t.Fatalf("slow query should log warn: %+v", line)
	}
}
