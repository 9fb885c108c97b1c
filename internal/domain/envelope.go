package domain

// Envelope pairs the persisted key material with a payload: Seal encrypts
// with the current public key, Open unlocks the private key with the
// passphrase and decrypts. Unlocked key material is scoped to the single
// call and never cached by implementations.
type Envelope interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(ciphertext []byte, passphrase string) ([]byte, error)
}
