// Package crypto exposes the minimal primitives used by rspass.
//
// Contents
//
//   - OpenPGP identity generation, passphrase locking and ASCII armor
//     (GenerateEntity, LockEntity, ArmorPrivate, ArmorPublic, ReadEntity,
//     UnlockRSA)
//   - PKCS#1 v1.5 sealing of credential payloads (SealRSA, OpenRSA) and
//     PEM encoding of the public half (EncodeRSAPublicKey,
//     DecodeRSAPublicKey)
//   - Grouped-hex key fingerprints for display (Fingerprint)
//
// # Notes
//
// Functions here return plain errors. Callers translate them into the
// rspass error taxonomy at the boundary where the failing operation is
// known.
package crypto
