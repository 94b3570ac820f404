package boltcad

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	b, err := NewAnchorA(Dimensions{Length: 200, Throw: 105, HeadWidth: 60, Radius: 8})
	if err != nil {
		t.Fatalf("NewAnchorA: %v", err)
	}
	if err := b.Place(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Z: 1}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if !strings.Contains(buf.String(), "placed anchor bolt") {
		t.Errorf("log output missing placement record: %q", buf.String())
	}

	// nil restores the silent default.
	SetLogger(nil)
	buf.Reset()
	if err := b.Place(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Z: 1}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nop logger produced output: %q", buf.String())
	}
}
