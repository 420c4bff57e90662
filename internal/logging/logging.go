// Package logging builds the logrus logger shared by every command.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to w at the given level and format. An
// unparseable level falls back to info.
func New(w io.Writer, level, format string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if strings.EqualFold(format, FormatJSON) {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}

// OpenFile returns a logger appending to path, and a function closing it.
// An empty path yields a logger that discards everything, which keeps the
// terminal dashboard's screen clean.
func OpenFile(path, level, format string) (*logrus.Logger, func(), error) {
	if path == "" {
		return New(io.Discard, level, format), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // user-chosen log path
	if err != nil {
		return nil, nil, err
	}
	return New(f, level, format), func() { _ = f.Close() }, nil
}
