// Package rspass is a personal secret manager: every credential lives as
// one encrypted file inside a git-backed tree, synchronized across machines
// through a single remote.
//
// The Store handle bundles the whole operation surface: repository and key
// initialization, credential insert/get/edit/remove/move (each mutation
// recorded as exactly one commit), and fetch/push against the origin
// remote. Failures carry a Kind from a closed taxonomy, so callers switch
// on IsKind rather than string-matching messages.
package rspass
