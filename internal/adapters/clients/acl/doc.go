// Package acl provides the Anti-Corruption Layer between the remote quote
// source and the domain.
//
// The remote source speaks a posts-shaped JSON API. Nothing from it crosses
// into the domain untranslated:
//
//   - External DTOs are unexported and live next to the adapter
//   - Records are validated before a [domain.Quote] is built from them
//   - Transport and status failures become domain errors
//
// # Package Components
//
//   - [BaseAdapter]: embeddable GET/POST helpers that map failures
//   - [MapHTTPError]: exchange failure to domain error mapping
//   - [ParseErrorResponse]: JSON error body parsing
//   - [DecodeResponse]: generic JSON response decoder
//   - [TranslateSlice]: truncating batch translation that skips bad records
//   - [QuoteClient]: the ports.RemoteQuotes implementation
//
// # Error Handling Strategy
//
//   - circuit open ([clients.ErrCircuitOpen]) → [domain.ErrUnavailable]
//   - network failure, 5xx, other non-2xx → [domain.ErrFetch]
//   - undecodable body or missing id → [domain.ErrParse]
//
// Callers treat all three as a degraded remote and keep working on local state.
package acl
