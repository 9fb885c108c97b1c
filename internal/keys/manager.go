package keys

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"rspass/internal/config"
	"rspass/internal/crypto"
	"rspass/internal/domain"
	"rspass/internal/util/memzero"
)

// Artifact file names inside the config directory.
const (
	PublicKeyFile  = "rspass.pub"
	PrivateKeyFile = "rspass.key"
	RSAKeyFile     = "rspass.pem"
)

// DefaultKeyBits is the RSA modulus size used when none is configured.
const DefaultKeyBits = 2048

// Manager persists and loads the rspass key material. It implements
// domain.Envelope: Seal encrypts under the stored RSA public key, Open
// unlocks the stored private key with a passphrase and decrypts.
//
// Key material is read from disk on every call and unlocked copies are
// dropped as soon as the call returns; nothing is cached.
type Manager struct {
	dirs *config.Dirs
	log  *zap.Logger
	bits int
}

// NewManager returns a Manager storing its artifacts under dirs.ConfigDir().
// A bits value of 0 selects DefaultKeyBits.
func NewManager(dirs *config.Dirs, log *zap.Logger, bits int) *Manager {
	if bits == 0 {
		bits = DefaultKeyBits
	}
	return &Manager{dirs: dirs, log: log, bits: bits}
}

// Generate creates the config directory and the three key artifacts for
// "name <email>", locking the private key with passphrase. If the config
// directory already exists the call is a no-op; artifacts are never
// overwritten. It returns the config directory path.
func (m *Manager) Generate(name, email, passphrase string) (string, error) {
	dir := m.dirs.ConfigDir()

	if err := os.Mkdir(dir, 0o700); err != nil {
		switch {
		case errors.Is(err, fs.ErrExist):
			m.log.Debug("config directory present, keeping existing keys",
				zap.String("dir", dir))
			return dir, nil
		case errors.Is(err, fs.ErrPermission):
			return "", domain.E(domain.KindPermissionDenied,
				"no permission to create the config directory %s", dir)
		default:
			return "", domain.Wrap(domain.KindInternal, err,
				"create config directory %s", dir)
		}
	}

	entity, err := crypto.GenerateEntity(name, email, m.bits)
	if err != nil {
		return "", domain.Wrap(domain.KindInternal, err, "generate keypair")
	}

	rsaPub, err := crypto.RSAPublicKey(entity)
	if err != nil {
		return "", domain.Wrap(domain.KindInternal, err, "derive RSA public key")
	}
	pemBytes := crypto.EncodeRSAPublicKey(rsaPub)

	pass, done := memzero.Scoped(passphrase)
	defer done()
	if err := crypto.LockEntity(entity, pass); err != nil {
		return "", domain.Wrap(domain.KindInternal, err, "lock private key")
	}

	private, err := crypto.ArmorPrivate(entity)
	if err != nil {
		return "", domain.Wrap(domain.KindInternal, err, "armor private key")
	}
	public, err := crypto.ArmorPublic(entity)
	if err != nil {
		return "", domain.Wrap(domain.KindInternal, err, "armor public key")
	}

	artifacts := []struct {
		name string
		data []byte
	}{
		{PublicKeyFile, public},
		{PrivateKeyFile, private},
		{RSAKeyFile, pemBytes},
	}
	for _, a := range artifacts {
		if err := writeFile(filepath.Join(dir, a.name), a.data, 0o600); err != nil {
			return "", domain.Wrap(domain.KindInternal, err, "write %s", a.name)
		}
	}

	m.log.Info("generated key material",
		zap.String("dir", dir),
		zap.Int("bits", m.bits),
		zap.String("fingerprint", crypto.Fingerprint(entity.PrimaryKey.Fingerprint)))
	return dir, nil
}

// PublicKey returns the armored public key, validating that it still parses.
func (m *Manager) PublicKey() (string, error) {
	b, err := m.readArtifact(PublicKeyFile, "public key")
	if err != nil {
		return "", err
	}
	if _, err := crypto.ReadEntity(b); err != nil {
		return "", domain.Wrap(domain.KindBadConfig, err, "invalid public key")
	}
	return string(b), nil
}

// Fingerprint returns the grouped-hex fingerprint of the stored public key.
func (m *Manager) Fingerprint() (string, error) {
	b, err := m.readArtifact(PublicKeyFile, "public key")
	if err != nil {
		return "", err
	}
	entity, err := crypto.ReadEntity(b)
	if err != nil {
		return "", domain.Wrap(domain.KindBadConfig, err, "invalid public key")
	}
	return crypto.Fingerprint(entity.PrimaryKey.Fingerprint), nil
}

// Seal encrypts plaintext under the stored RSA public key.
func (m *Manager) Seal(plaintext []byte) ([]byte, error) {
	b, err := m.readArtifact(RSAKeyFile, "RSA public key")
	if err != nil {
		return nil, err
	}
	pub, err := crypto.DecodeRSAPublicKey(b)
	if err != nil {
		return nil, domain.Wrap(domain.KindBadConfig, err, "invalid RSA public key")
	}
	ciphertext, err := crypto.SealRSA(pub, plaintext)
	if err != nil {
		return nil, domain.Wrap(domain.KindEncryption, err, "encrypt payload")
	}
	return ciphertext, nil
}

// Open unlocks the stored private key with passphrase and decrypts
// ciphertext. A wrong passphrase, tampered ciphertext, or padding mismatch
// all fail with DecryptionError; partial plaintext is never returned.
func (m *Manager) Open(ciphertext []byte, passphrase string) ([]byte, error) {
	b, err := m.readArtifact(PrivateKeyFile, "private key")
	if err != nil {
		return nil, err
	}
	entity, err := crypto.ReadEntity(b)
	if err != nil {
		return nil, domain.Wrap(domain.KindBadConfig, err, "invalid private key")
	}

	pass, done := memzero.Scoped(passphrase)
	defer done()
	priv, err := crypto.UnlockRSA(entity, pass)
	if err != nil {
		return nil, domain.Wrap(domain.KindDecryption, err, "unlock private key")
	}

	plaintext, err := crypto.OpenRSA(priv, ciphertext)
	if err != nil {
		return nil, domain.Wrap(domain.KindDecryption, err, "decrypt payload")
	}
	return plaintext, nil
}

// readArtifact loads one key file, mapping absence to NotInitialized.
func (m *Manager) readArtifact(name, what string) ([]byte, error) {
	path := filepath.Join(m.dirs.ConfigDir(), name)
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, domain.E(domain.KindNotInitialized, "%s not found, generate keys first", what)
	case errors.Is(err, fs.ErrPermission):
		return nil, domain.E(domain.KindPermissionDenied, "no permission to read the %s", what)
	case err != nil:
		return nil, domain.Wrap(domain.KindInternal, err, "read %s", what)
	}
	return b, nil
}

// writeFile writes bytes via a temp file, then atomically replaces the
// target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// Compile-time assertion that Manager implements domain.Envelope.
var _ domain.Envelope = (*Manager)(nil)
