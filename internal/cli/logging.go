package cli

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewDebugLogger returns the logger step debug output goes to. With an empty
// path debug output is written to stderr when verbose, and dropped otherwise.
// With a path it is written to a rotating log file.
func NewDebugLogger(path string, verbose bool) (*log.Logger, io.Closer) {
	if path != "" {
		logFile := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		var w io.Writer = logFile
		if verbose {
			w = io.MultiWriter(logFile, os.Stderr)
		}
		return log.New(w, "", log.LstdFlags|log.Lmicroseconds), logFile
	}

	if verbose {
		return log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds), nopCloser{}
	}
	return log.New(io.Discard, "", 0), nopCloser{}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
