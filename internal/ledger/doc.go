// Package ledger implements the version-control side of rspass on top of
// go-git: one repository, one branch, one remote, with a fixed committer
// identity. The repository is opened fresh on every call; no state is held
// between operations.
package ledger
