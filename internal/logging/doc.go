// Package logging provides the structured zerolog setup shared by the
// carbonwise CLI and TUI.
//
// Loggers travel in context.Context. Every event logged with .Ctx(ctx)
// carries the session trace ID so a whole comparison session (catalog load,
// each compare round trip, stale discards) can be correlated in one log.
package logging
