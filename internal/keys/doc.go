// Package keys persists the rspass key material and exposes the
// encrypt/decrypt envelope built on it.
//
// Three artifacts live in the config directory: rspass.key, the
// passphrase-locked armored private key; rspass.pub, the armored public
// key; and rspass.pem, the derived RSA public key used to seal credential
// payloads. Generation is idempotent and unlocked key material never
// outlives the single call that needed it.
package keys
