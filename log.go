package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// setupLog configures logging. Errors go to stderr; setting ELEVENIFY_LOGFILE
// redirects everything to a file with debug output enabled. The returned
// closer flushes the log file, if any.
func setupLog() (func() error, error) {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)
	log.SetLevel(log.InfoLevel)

	if lf := os.Getenv("ELEVENIFY_LOGFILE"); lf != "" {
		f, err := os.OpenFile(lf, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec
		if err != nil {
			return nil, fmt.Errorf("error setting up log file: %w", err)
		}
		log.SetOutput(f)
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return f.Close, nil
	}

	return func() error { return nil }, nil
}
