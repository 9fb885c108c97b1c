package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

const rsaPublicPEMType = "RSA PUBLIC KEY"

// EncodeRSAPublicKey renders pub as a PKCS#1 PEM block.
func EncodeRSAPublicKey(pub *rsa.PublicKey) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  rsaPublicPEMType,
		Bytes: x509.MarshalPKCS1PublicKey(pub),
	})
}

// DecodeRSAPublicKey parses a PKCS#1 PEM block produced by
// EncodeRSAPublicKey.
func DecodeRSAPublicKey(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != rsaPublicPEMType {
		return nil, errors.New("no RSA public key block found")
	}
	pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse RSA public key: %w", err)
	}
	return pub, nil
}

// SealRSA encrypts plaintext under pub with PKCS#1 v1.5 padding. The
// plaintext must be at most pub.Size()-11 bytes.
func SealRSA(pub *rsa.PublicKey, plaintext []byte) ([]byte, error) {
	return rsa.EncryptPKCS1v15(rand.Reader, pub, plaintext)
}

// OpenRSA decrypts a PKCS#1 v1.5 ciphertext. Padding failures surface as
// errors; no partial plaintext is ever returned.
func OpenRSA(priv *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	return rsa.DecryptPKCS1v15(nil, priv, ciphertext)
}
