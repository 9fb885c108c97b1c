package rspass

import "rspass/internal/password"

// GeneratePassword returns a random password of the requested length with
// at least one uppercase letter, one lowercase letter, one digit and one
// special character. Lengths below 4 are raised to 4.
func GeneratePassword(length int) (string, error) {
	return password.Generate(length)
}
