package memzero

import "crypto/subtle"

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// Scoped copies s into a fresh byte slice and returns it together with a
// cleanup that wipes the copy. Use it to hand a passphrase to an API taking
// bytes without extending the plaintext's lifetime:
//
//	pass, done := memzero.Scoped(passphrase)
//	defer done()
func Scoped(s string) ([]byte, func()) {
	b := []byte(s)
	return b, func() { Zero(b) }
}
