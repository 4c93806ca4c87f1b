// Package logging provides structured logging for the skillery CLI built
// on log/slog.
//
// The default text handler is optimized for terminal output: levels and
// attribute keys are colorized when the writer is a TTY and color is not
// disabled via NO_COLOR or TERM=dumb. A JSON handler is available for
// machine consumption, and MultiHandler fans records out to several
// handlers (e.g. terminal plus a log file).
//
// Verbosity flags map to levels via [LevelFromVerbosity]: no flag is
// Info, -v is Debug, -vv is Trace.
package logging
