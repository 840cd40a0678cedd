// Package addr implements the Address Leaves: IPv4, MAC and Port
// values that each implement the bitfield.Record contract as a single
// fixed-width unsigned-integer leaf, plus their string parsing, range and
// subnet-enumeration helpers.
package addr

import (
	"io"
	"log/slog"
	"os"
)

// log is the diagnostic logger address parsers write to on a malformed
// input string: parsers emit a diagnostic line in addition to returning
// the error code, preserving the original offending string. The core
// does not own the process's logging configuration, so consumers may
// redirect or replace it.
var log = newDefaultLogger()

func newDefaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// SetLogOutput redirects the address leaves' diagnostic logger to w.
func SetLogOutput(w io.Writer) {
	log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// SetLogger replaces the address leaves' diagnostic logger outright.
func SetLogger(l *slog.Logger) {
	if l == nil {
		panic("addr: SetLogger called with nil logger")
	}
	log = l
}

func warnParseFailure(kind, input string, err error) {
	log.Warn(kind+" parse failed", "input", input, "err", err)
}
