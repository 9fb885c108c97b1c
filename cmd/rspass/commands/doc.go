// Package commands defines the rspass CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init      Create the credential repository
//   - keygen    Generate the key pair protecting the store
//   - insert    Encrypt and store a new credential
//   - get       Decrypt and print a credential
//   - edit      Rewrite an existing credential
//   - remove    Delete a credential
//   - move      Rename a credential
//   - remote    Manage the synchronization remote
//   - fetch     Download and reconcile the remote history
//   - push      Upload the local history to the remote
//   - generate  Print a random password
//
// # Implementation
//
// The root command resolves the data and config directories and builds the
// store before any subcommand runs, so handlers share one wired rspass.Store.
// Passphrases come from --passphrase or an interactive no-echo prompt.
package commands
