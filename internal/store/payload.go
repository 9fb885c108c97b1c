package store

import (
	"strings"

	"rspass/internal/domain"
)

// encodePayload renders a credential as the plaintext wire format: the
// secret on the first line, one key=value line per metadata pair after it,
// in order. The format has no escaping, so newlines anywhere and '=' or
// empty metadata keys are rejected rather than silently corrupting the
// round trip.
func encodePayload(cred domain.Credential) (string, error) {
	if strings.ContainsRune(cred.Secret, '\n') {
		return "", domain.E(domain.KindInsertion, "secret must not contain newlines")
	}

	var b strings.Builder
	b.WriteString(cred.Secret)
	for _, p := range cred.Metadata {
		switch {
		case p.Key == "":
			return "", domain.E(domain.KindInsertion, "metadata key must not be empty")
		case strings.ContainsRune(p.Key, '='):
			return "", domain.E(domain.KindInsertion, "metadata key %q must not contain '='", p.Key)
		case strings.ContainsRune(p.Key, '\n') || strings.ContainsRune(p.Value, '\n'):
			return "", domain.E(domain.KindInsertion, "metadata for %q must not contain newlines", p.Key)
		}
		b.WriteByte('\n')
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String(), nil
}

// decodePayload parses a decrypted payload. The first line is the secret;
// remaining lines holding a key=value pair become metadata, with a later
// duplicate key overwriting the earlier value in place. Lines without '='
// are skipped.
func decodePayload(payload string) domain.Credential {
	lines := strings.Split(payload, "\n")
	cred := domain.Credential{Secret: lines[0]}
	for _, line := range lines[1:] {
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			continue
		}
		cred.Metadata = cred.Metadata.Set(key, value)
	}
	return cred
}

// validateName checks that a credential name is a clean relative path:
// non-empty, slash-separated, with no empty, "." or ".." segments.
func validateName(name string) error {
	if name == "" {
		return domain.E(domain.KindInsertion, "credential name must not be empty")
	}
	for _, seg := range strings.Split(name, "/") {
		switch seg {
		case "":
			return domain.E(domain.KindInsertion, "credential name %q has an empty path segment", name)
		case ".", "..":
			return domain.E(domain.KindInsertion, "credential name %q escapes the repository", name)
		}
	}
	return nil
}
