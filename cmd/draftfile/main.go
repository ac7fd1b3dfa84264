package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ulieet/NeuroSoft/internal/doctext"
	"github.com/ulieet/NeuroSoft/internal/extract"
)

// draftfile runs text extraction and the narrative engine over a single
// document and prints the draft record as JSON. No database involved;
// useful for tuning the extraction rules against real histories.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "draftfile <path-to-document>")
		os.Exit(2)
	}
	path := os.Args[1]

	textExtractor := doctext.New(logger)
	engine := extract.NewEngine(logger)

	start := time.Now()
	text, err := textExtractor.Extract(path)
	if err != nil {
		logger.Error("text extraction failed", "path", path, "error", err)
		os.Exit(1)
	}

	draft := engine.Process(text.Text, text.Format, filepath.Base(path))
	draft.Source.Pages = text.Pages
	dur := time.Since(start)

	out, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		logger.Error("encode draft", "error", err)
		os.Exit(1)
	}
	if _, err := os.Stdout.Write(append(out, '\n')); err != nil {
		logger.Error("write draft", "error", err)
		os.Exit(1)
	}

	logger.Info("draft extraction OK",
		"path", path,
		"format", text.Format,
		"pages", text.Pages,
		"bytes", len(text.Text),
		"duration_ms", dur.Milliseconds(),
	)
}
