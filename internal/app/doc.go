// Package app wires application dependencies for the CLI.
//
// It builds the directory resolver, key manager, git ledger and credential
// store from Config, exposing them via the Wire struct for commands to use.
package app
