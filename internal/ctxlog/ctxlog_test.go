package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := With(context.Background(), logger)

	From(ctx).Info("archived", "task", "mirror")
	if !strings.Contains(buf.String(), "task=mirror") {
		t.Errorf("log output = %q, want it to contain task=mirror", buf.String())
	}
}

func TestFromBareContextFallsBack(t *testing.T) {
	if From(context.Background()) != slog.Default() {
		t.Error("From() on a bare context did not return the default logger")
	}
}
