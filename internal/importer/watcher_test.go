package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestStartWatcher_InitialScanDeliversEverything(t *testing.T) {
	// More documents than the channel buffers: every one must still arrive
	// even when the consumer starts reading after the scan.
	dir := t.TempDir()
	const n = 300
	for i := 0; i < n; i++ {
		name := filepath.Join(dir, fmt.Sprintf("historia%03d.txt", i))
		if err := os.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "foto.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".oculto.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	paths, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true}, logger)
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	got := map[string]bool{}
	deadline := time.After(10 * time.Second)
	for len(got) < n {
		select {
		case p, ok := <-paths:
			if !ok {
				t.Fatalf("channel closed after %d of %d paths", len(got), n)
			}
			if strings.HasSuffix(p, ".jpg") {
				t.Fatalf("unsupported extension emitted: %s", p)
			}
			if strings.HasPrefix(filepath.Base(p), ".") {
				t.Fatalf("hidden file emitted: %s", p)
			}
			got[p] = true
		case <-deadline:
			t.Fatalf("timed out with %d of %d paths", len(got), n)
		}
	}
}

func TestStartWatcher_NoRoots(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, _, err := StartWatcher(context.Background(), WatchConfig{}, logger); err == nil {
		t.Fatal("want error for empty roots")
	}
}
