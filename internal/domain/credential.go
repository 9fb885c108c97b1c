package domain

// MetadataPair is one key=value line of a credential payload.
type MetadataPair struct {
	Key   string
	Value string
}

// Metadata is the ordered set of metadata pairs attached to a credential.
// Order is the order of the lines on disk and is preserved across edits.
type Metadata []MetadataPair

// Lookup returns the value for key and whether it is present.
func (m Metadata) Lookup(key string) (string, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Set overwrites the value for key in place, or appends a new pair when the
// key is not present yet.
func (m Metadata) Set(key, value string) Metadata {
	for i, p := range m {
		if p.Key == key {
			m[i].Value = value
			return m
		}
	}
	return append(m, MetadataPair{Key: key, Value: value})
}

// Remove deletes every pair with the given key, keeping the order of the rest.
func (m Metadata) Remove(key string) Metadata {
	out := m[:0]
	for _, p := range m {
		if p.Key != key {
			out = append(out, p)
		}
	}
	return out
}

// Credential is a decrypted credential payload: the secret itself plus any
// metadata lines. On disk it only ever exists as ciphertext.
type Credential struct {
	Secret   string
	Metadata Metadata
}

// MetadataChange is one step of an edit: set Key to Value, or drop Key
// entirely when Remove is true.
type MetadataChange struct {
	Key    string
	Value  string
	Remove bool
}

// CredentialUpdate describes an edit to an existing credential. A nil Secret
// keeps the current secret; Metadata changes are applied in order.
type CredentialUpdate struct {
	Secret   *string
	Metadata []MetadataChange
}

// Apply merges the update into cred, returning the resulting credential.
func (u CredentialUpdate) Apply(cred Credential) Credential {
	if u.Secret != nil {
		cred.Secret = *u.Secret
	}
	for _, ch := range u.Metadata {
		if ch.Remove {
			cred.Metadata = cred.Metadata.Remove(ch.Key)
			continue
		}
		cred.Metadata = cred.Metadata.Set(ch.Key, ch.Value)
	}
	return cred
}
