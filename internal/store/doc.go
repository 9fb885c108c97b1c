// Package store maps logical credential names onto encrypted files inside
// the repository root and records every mutation as exactly one ledger
// commit.
//
// A credential's on-disk path is always exactly its name; subdirectories
// express hierarchical grouping. The plaintext payload is the secret line
// followed by one key=value line per metadata pair; it only ever exists in
// memory, sealed through the envelope before touching disk.
package store
