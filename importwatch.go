package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"boletoapi/pkg/importar"

	"github.com/fsnotify/fsnotify"
)

// startImportWatcher watches a drop directory: *.csv and *.txt files created
// there are imported on behalf of the bootstrap admin and renamed .done or
// .failed so a file is never processed twice.
func startImportWatcher(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					processDroppedFile(event.Name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("import watcher error", "error", err)
			}
		}
	}()
	slog.Info("import watcher started", "dir", dir)
	return nil
}

func processDroppedFile(path string) {
	var parse func(io.Reader) ([]importar.Row, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		parse = importar.ParseCSV
	case ".txt":
		parse = importar.ParseTXT
	default:
		return
	}
	// Writers may still be flushing when the create event fires.
	time.Sleep(200 * time.Millisecond)

	f, err := os.Open(path)
	if err != nil {
		slog.Warn("import watcher cannot open file", "file", path, "error", err)
		return
	}
	rows, err := parse(f)
	f.Close()
	if err != nil {
		slog.Error("dropped file rejected", "file", path, "error", err)
		markProcessed(path, ".failed")
		return
	}
	admin, err := resolveUser(db, strings.ToLower(cfg.AdminEmail))
	if err != nil {
		slog.Error("import watcher: bootstrap admin not found", "email", cfg.AdminEmail)
		return
	}
	lote, err := importBoletos(admin, rows)
	if err != nil {
		slog.Error("dropped file import failed", "file", path, "error", err)
		markProcessed(path, ".failed")
		return
	}
	slog.Info("dropped file imported", "file", path, "rows", len(rows), "lote", lote)
	markProcessed(path, ".done")
}

func markProcessed(path, suffix string) {
	if err := os.Rename(path, path+suffix); err != nil {
		slog.Warn("could not rename processed file", "file", path, "error", err)
	}
}
