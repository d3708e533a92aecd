package geom

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs routes geom's logger into a buffer for the duration of the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestNopHandler(t *testing.T) {
	var h slog.Handler = nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = true", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("n", 1)}).(nopHandler); !ok {
		t.Error("WithAttrs() did not return a nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup() did not return a nopHandler")
	}
}

func TestLogger_SilentByDefault(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)
	Logger().Info("scene loaded", "shapes", 3)
	if !strings.Contains(buf.String(), "shapes=3") {
		t.Errorf("log output = %q", buf.String())
	}

	SetLogger(nil)
	if Logger() == nil || Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestDegenerateGridRayIsLogged(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	if _, ok := RaycastGrid(V2(0.5, 0.5), Vec2{}, SolidCells()); ok {
		t.Fatal("zero direction should not hit")
	}
	if !strings.Contains(buf.String(), "zero direction") {
		t.Errorf("missing debug record, got %q", buf.String())
	}
}

func TestLogger_ConcurrentSwap(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			RaycastGrid(V2(0, 0), Vec2{}, SolidCells())
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			SetLogger(nil)
		}()
	}
	wg.Wait()
}
