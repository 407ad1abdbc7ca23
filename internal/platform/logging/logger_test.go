package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw     string
		want    Level
		wantErr bool
	}{
		{raw: "", want: LevelInfo},
		{raw: "DEBUG", want: LevelDebug},
		{raw: " warning ", want: LevelWarn},
		{raw: "error", want: LevelError},
		{raw: "verbose", want: LevelInfo, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseLevel(tc.raw)
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestLogger_WritesFieldsAndTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo).With("component", "stats")

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.Debug("hidden")
	logger.WarnContext(ctx, "leaderboard cache miss", "team_id", "t1", "error", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line must be filtered: %s", out)
	}
	for _, want := range []string{`"component":"stats"`, `"team_id":"t1"`, `"error":"boom"`, `"trace_id":"0102030405060708090a0b0c0d0e0f10"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in %s", want, out)
		}
	}
}

func TestLogger_NilAndDanglingKeys(t *testing.T) {
	var buf bytes.Buffer
	prev := Default()
	SetDefault(NewJSONWriter(&buf, LevelDebug))
	t.Cleanup(func() { SetDefault(prev) })

	var logger *Logger
	logger.Info("roster loaded", "team_id", "t1", "dangling")

	out := buf.String()
	if !strings.Contains(out, `"team_id":"t1"`) || !strings.Contains(out, `"dangling":null`) {
		t.Fatalf("unexpected output: %s", out)
	}
}
