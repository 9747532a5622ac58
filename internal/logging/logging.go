// Package logging builds the logr.Logger shared by the CLI and the display.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// New returns a logger writing one line per entry to w. Entries with a
// V-level above verbosity are dropped.
func New(w io.Writer, verbosity int) logr.Logger {
	if w == nil {
		return logr.Discard()
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{
		LogTimestamp: true,
		Verbosity:    verbosity,
	}).WithName("povdisplay")
}

// Open resolves a log destination. An empty path means stderr unless the
// terminal is owned by a full-screen UI, in which case logging is discarded.
// The returned close func is always safe to call.
func Open(path string, verbosity int, tty bool) (logr.Logger, func() error, error) {
	nop := func() error { return nil }
	if path == "" {
		if tty {
			return logr.Discard(), nop, nil
		}
		return New(os.Stderr, verbosity), nop, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return logr.Discard(), nop, fmt.Errorf("logging: open %s: %w", path, err)
	}
	return New(f, verbosity), f.Close, nil
}
