// Package logging assembles structured slog loggers for the gxttool CLI.
//
// It owns the console and JSON handlers, maps configured level names onto
// slog levels, and routes output to stderr (or files) so stdout stays free for
// command results. A no-op logger is provided for tests and library callers
// that do not want output.
package logging
