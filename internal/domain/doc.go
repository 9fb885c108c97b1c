// Package domain defines core data models and contracts shared across rspass.
// It contains plain types (credentials, remote auth, fetch outcomes), the
// Ledger and Envelope capability interfaces, and the error taxonomy. No I/O.
package domain
