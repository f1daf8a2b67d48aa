// Package compare holds the state of one comparison session.
//
// A Session owns the segment catalog, the form draft and the request phase
// (Idle, Loading, Success, Failed). It is driven from a single event loop:
// Submit issues a tagged Ticket, the Ticket is run off the loop against the
// ranking service, and the resulting Outcome is handed back to Apply. Only
// the outcome of the most recently issued ticket changes the session; older
// ones are discarded.
package compare
