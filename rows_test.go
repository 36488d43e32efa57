package resample

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDriverErrorLogLevels(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	src := newGrayImage(t, 1, 1, func(_, _ int) byte { return 1 })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Resize(ctx, src, 4, 4); err == nil {
		t.Fatal("Resize() with cancelled context should fail")
	}
	if out := buf.String(); !strings.Contains(out, "level=WARN") || !strings.Contains(out, "resize cancelled") {
		t.Errorf("cancellation not logged at WARN:\n%s", out)
	}

	buf.Reset()
	if _, err := Resize(context.Background(), src, 3, 3, WithCoefficients(Coefficients{B: 3, C: 0})); err == nil {
		t.Fatal("Resize() with a degenerate window should fail")
	}
	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "resize failed") {
		t.Errorf("failure not logged at DEBUG:\n%s", out)
	}
	if strings.Contains(out, "level=WARN") {
		t.Errorf("failure logged at WARN:\n%s", out)
	}
}
