package rspass

import (
	"go.uber.org/zap"

	"rspass/internal/app"
	"rspass/internal/domain"
)

// Config controls where a Store keeps its state and how keys are generated.
// The zero value uses the platform default directories, 2048-bit keys and
// no logging.
type Config struct {
	DataDir   string      // credential repository root override
	ConfigDir string      // key artifact directory override
	KeyBits   int         // RSA modulus size for GenerateKeys; 0 selects 2048
	Logger    *zap.Logger // optional structured logger
}

// Store is the top-level rspass handle. Directories are fixed at
// construction; a second override attempt fails with ConfigAlreadySet.
type Store struct {
	wire *app.Wire
}

// New builds a Store from cfg.
func New(cfg Config) (*Store, error) {
	wire, err := app.NewWire(app.Config{
		DataDir:   cfg.DataDir,
		ConfigDir: cfg.ConfigDir,
		KeyBits:   cfg.KeyBits,
		Logger:    cfg.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &Store{wire: wire}, nil
}

// DataDir returns the credential repository root.
func (s *Store) DataDir() string { return s.wire.Dirs.DataDir() }

// ConfigDir returns the key artifact directory.
func (s *Store) ConfigDir() string { return s.wire.Dirs.ConfigDir() }

// Init creates the credential repository and returns its root path. It
// fails with InitializationError when the repository already exists.
func (s *Store) Init() (string, error) {
	if err := s.wire.Ledger.Init(); err != nil {
		return "", err
	}
	return s.DataDir(), nil
}

// GenerateKeys creates the key artifacts for "name <email>", locking the
// private key with passphrase, and returns the config directory holding
// them. Existing artifacts are kept untouched.
func (s *Store) GenerateKeys(name, email, passphrase string) (string, error) {
	return s.wire.Keys.Generate(name, email, passphrase)
}

// PublicKey returns the armored public key.
func (s *Store) PublicKey() (string, error) {
	return s.wire.Keys.PublicKey()
}

// Fingerprint returns the grouped-hex fingerprint of the public key.
func (s *Store) Fingerprint() (string, error) {
	return s.wire.Keys.Fingerprint()
}

// Insert stores a new credential under name and commits it.
func (s *Store) Insert(name, secret string, metadata Metadata) error {
	return s.wire.Store.Insert(name, secret, metadata)
}

// Get decrypts the named credential. With full set it returns the whole
// payload, otherwise only the secret line.
func (s *Store) Get(name, passphrase string, full bool) (string, error) {
	return s.wire.Store.Get(name, passphrase, full)
}

// Edit rewrites an existing credential and commits the change.
func (s *Store) Edit(name, passphrase string, update CredentialUpdate) error {
	return s.wire.Store.Edit(name, passphrase, update)
}

// Remove deletes the named credential and commits the removal.
func (s *Store) Remove(name string) error {
	return s.wire.Store.Remove(name)
}

// Move renames a credential and commits the rename.
func (s *Store) Move(target, destination string) error {
	return s.wire.Store.Move(target, destination)
}

// AddRemote registers the origin remote for synchronization.
func (s *Store) AddRemote(uri string) error {
	return s.wire.Ledger.AddRemote(uri)
}

// Fetch downloads the tracked branch from origin using the given basic
// credentials and reports how the local branch was reconciled.
func (s *Store) Fetch(username, token string) (FetchStatus, error) {
	return s.wire.Ledger.Fetch(domain.RemoteAuth{Username: username, Token: token})
}

// Push uploads the tracked branch to origin using the given basic
// credentials.
func (s *Store) Push(username, token string) error {
	return s.wire.Ledger.Push(domain.RemoteAuth{Username: username, Token: token})
}
