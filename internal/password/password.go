// Package password generates random passwords with guaranteed character
// classes.
package password

import (
	"crypto/rand"
	"math/big"
)

const (
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	digits    = "0123456789"
	specials  = "!@#$%^&*()"

	alphanumeric = uppercase + lowercase + digits
)

// Generate returns a random password of the requested length holding at
// least one uppercase letter, one lowercase letter, one digit and one
// special character. Lengths below 4 are raised to 4 so every class fits.
func Generate(length int) (string, error) {
	if length < 4 {
		length = 4
	}

	chars := make([]byte, 0, length)
	for _, class := range []string{uppercase, lowercase, digits, specials} {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for len(chars) < length {
		c, err := pick(alphanumeric)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	if err := shuffle(chars); err != nil {
		return "", err
	}
	return string(chars), nil
}

func pick(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, err
	}
	return set[n.Int64()], nil
}

// shuffle is a Fisher-Yates shuffle driven by crypto/rand, so the
// guaranteed class characters do not cluster at the front.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		j := n.Int64()
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
