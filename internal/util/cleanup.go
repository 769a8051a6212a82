package util

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
)

// InterruptContext returns a context that is cancelled on SIGINT or SIGTERM.
func InterruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// CleanupUnfinishedTempFolders removes the "_tmp" chapter folders left in
// outputDir or in any of its manga subfolders, returning the removed paths.
func CleanupUnfinishedTempFolders(outputDir string) []string {
	var removed []string

	dirs := []string{outputDir}
	if entries, err := os.ReadDir(outputDir); err == nil {
		for _, e := range entries {
			if e.IsDir() && !strings.HasSuffix(e.Name(), "_tmp") {
				dirs = append(dirs, filepath.Join(outputDir, e.Name()))
			}
		}
	}

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, e := range entries {
			if !e.IsDir() || !strings.HasSuffix(e.Name(), "_tmp") {
				continue
			}

			full := filepath.Join(dir, e.Name())
			if err := os.RemoveAll(full); err == nil {
				removed = append(removed, full)
			}
		}

		RemoveIfEmpty(dir)
	}

	return removed
}

// RemoveIfEmpty deletes dir when it has no entries.
func RemoveIfEmpty(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) > 0 {
		return false
	}
	return os.Remove(dir) == nil
}

func CleanupFolder(folder string) {
	_ = os.RemoveAll(folder)
}
