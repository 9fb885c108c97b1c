package crypto

import (
	"bytes"
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
)

// GenerateEntity creates a fresh RSA OpenPGP identity for "name <email>".
func GenerateEntity(name, email string, bits int) (*openpgp.Entity, error) {
	cfg := &packet.Config{RSABits: bits}
	entity, err := openpgp.NewEntity(name, "", email, cfg)
	if err != nil {
		return nil, fmt.Errorf("generate entity: %w", err)
	}
	return entity, nil
}

// LockEntity encrypts every private key packet in the entity with the
// passphrase. The entity can no longer sign after locking; serialize it
// with ArmorPrivate.
func LockEntity(entity *openpgp.Entity, passphrase []byte) error {
	if entity.PrivateKey == nil {
		return errors.New("entity has no private key")
	}
	if err := entity.PrivateKey.Encrypt(passphrase); err != nil {
		return fmt.Errorf("lock primary key: %w", err)
	}
	for i := range entity.Subkeys {
		sub := &entity.Subkeys[i]
		if sub.PrivateKey == nil {
			continue
		}
		if err := sub.PrivateKey.Encrypt(passphrase); err != nil {
			return fmt.Errorf("lock subkey: %w", err)
		}
	}
	return nil
}

// ArmorPrivate renders the entity, private key packets included, as an
// ASCII-armored block.
func ArmorPrivate(entity *openpgp.Entity) ([]byte, error) {
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PrivateKeyType, nil)
	if err != nil {
		return nil, err
	}
	if err := entity.SerializePrivateWithoutSigning(w, nil); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("serialize private key: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ArmorPublic renders the public half of the entity as an ASCII-armored
// block.
func ArmorPublic(entity *openpgp.Entity) ([]byte, error) {
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
	if err != nil {
		return nil, err
	}
	if err := entity.Serialize(w); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("serialize public key: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadEntity parses a single armored OpenPGP key block, public or private.
func ReadEntity(armored []byte) (*openpgp.Entity, error) {
	ring, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(armored))
	if err != nil {
		return nil, fmt.Errorf("read armored key: %w", err)
	}
	if len(ring) == 0 {
		return nil, errors.New("no key in armored block")
	}
	return ring[0], nil
}

// UnlockRSA decrypts the entity's primary private key with the passphrase
// and returns the underlying RSA key.
func UnlockRSA(entity *openpgp.Entity, passphrase []byte) (*rsa.PrivateKey, error) {
	pk := entity.PrivateKey
	if pk == nil {
		return nil, errors.New("entity has no private key")
	}
	if pk.Encrypted {
		if err := pk.Decrypt(passphrase); err != nil {
			return nil, fmt.Errorf("unlock private key: %w", err)
		}
	}
	key, ok := pk.PrivateKey.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is %T, not RSA", pk.PrivateKey)
	}
	return key, nil
}

// RSAPublicKey returns the RSA public key behind the entity's primary key.
func RSAPublicKey(entity *openpgp.Entity) (*rsa.PublicKey, error) {
	pub, ok := entity.PrimaryKey.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is %T, not RSA", entity.PrimaryKey.PublicKey)
	}
	return pub, nil
}
