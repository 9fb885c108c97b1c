package crypto

import (
	"encoding/hex"
	"strings"
)

// Fingerprint renders a key fingerprint in the conventional grouped-hex
// form, four characters per group.
func Fingerprint(fpr []byte) string {
	s := strings.ToUpper(hex.EncodeToString(fpr))
	groups := make([]string, 0, (len(s)+3)/4)
	for len(s) > 4 {
		groups = append(groups, s[:4])
		s = s[4:]
	}
	groups = append(groups, s)
	return strings.Join(groups, " ")
}
