package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"rspass/internal/config"
	"rspass/internal/domain"
)

// Store is the credential store: one ciphertext file per credential below
// the data directory, every mutation recorded as exactly one ledger commit.
// No state is held between calls.
type Store struct {
	dirs     *config.Dirs
	envelope domain.Envelope
	ledger   domain.Ledger
	log      *zap.Logger
}

// NewStore wires a Store over the injected directories, envelope and
// ledger.
func NewStore(dirs *config.Dirs, envelope domain.Envelope, ledger domain.Ledger, log *zap.Logger) *Store {
	return &Store{dirs: dirs, envelope: envelope, ledger: ledger, log: log}
}

// credentialPath maps a logical name onto its file below the data
// directory.
func (s *Store) credentialPath(name string) string {
	return filepath.Join(s.dirs.DataDir(), filepath.FromSlash(name))
}

// Insert creates a new credential and commits it as `add "<name>"`. An
// existing credential with the same name fails AlreadyExists and stays
// untouched, history included.
func (s *Store) Insert(name, secret string, metadata domain.Metadata) error {
	if err := s.ledger.Open(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}
	payload, err := encodePayload(domain.Credential{Secret: secret, Metadata: metadata})
	if err != nil {
		return err
	}
	ciphertext, err := s.envelope.Seal([]byte(payload))
	if err != nil {
		return err
	}

	path := s.credentialPath(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return mapDirErr(err)
	}
	if err := createExclusive(path, ciphertext, 0o600); err != nil {
		switch {
		case errors.Is(err, fs.ErrExist):
			return domain.E(domain.KindAlreadyExists, "a credential named %q already exists", name)
		case errors.Is(err, fs.ErrPermission):
			return domain.E(domain.KindPermissionDenied, "no permission to write into the repository")
		default:
			return domain.Wrap(domain.KindInternal, err, "create credential file")
		}
	}

	hash, err := s.ledger.Commit([]string{name}, nil, fmt.Sprintf("add %q", name))
	if err != nil {
		return err
	}
	s.log.Info("inserted credential", zap.String("name", name), zap.String("commit", hash))
	return nil
}

// Get reads and decrypts a credential. With full set it returns the whole
// payload; otherwise exactly the first line, the secret.
func (s *Store) Get(name, passphrase string, full bool) (string, error) {
	if err := validateName(name); err != nil {
		return "", domain.E(domain.KindNotFound, "credential %q not found", name)
	}

	path := s.credentialPath(name)
	if info, err := os.Lstat(path); err == nil && info.IsDir() {
		// A group of credentials, not a credential.
		return "", domain.E(domain.KindNotFound, "credential %q not found", name)
	}

	ciphertext, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", domain.E(domain.KindNotFound, "credential %q not found", name)
	case errors.Is(err, fs.ErrPermission):
		return "", domain.E(domain.KindPermissionDenied, "no permission to read this credential")
	case err != nil:
		return "", domain.Wrap(domain.KindInternal, err, "read credential file")
	}

	payload, err := s.envelope.Open(ciphertext, passphrase)
	if err != nil {
		return "", err
	}
	if full {
		return string(payload), nil
	}
	return decodePayload(string(payload)).Secret, nil
}

// Edit rewrites an existing credential and commits it as `update "<name>"`.
// A nil update secret keeps the current one; metadata changes apply in
// order, preserving the position of untouched pairs. The file is replaced
// through a temp file and rename so a shorter payload never leaves stale
// ciphertext behind.
func (s *Store) Edit(name, passphrase string, update domain.CredentialUpdate) error {
	if err := s.ledger.Open(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return domain.E(domain.KindNotFound, "credential %q not found", name)
	}

	path := s.credentialPath(name)
	if info, err := os.Lstat(path); err == nil && info.IsDir() {
		// A group of credentials, not a credential.
		return domain.E(domain.KindNotFound, "credential %q not found", name)
	}

	ciphertext, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return domain.E(domain.KindNotFound, "credential %q not found", name)
	case errors.Is(err, fs.ErrPermission):
		return domain.E(domain.KindPermissionDenied, "no permission to edit this credential")
	case err != nil:
		return domain.Wrap(domain.KindInternal, err, "read credential file")
	}

	payload, err := s.envelope.Open(ciphertext, passphrase)
	if err != nil {
		return err
	}

	next, err := encodePayload(update.Apply(decodePayload(string(payload))))
	if err != nil {
		return err
	}
	sealed, err := s.envelope.Seal([]byte(next))
	if err != nil {
		return err
	}
	if err := replaceFile(path, sealed, 0o600); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return domain.E(domain.KindPermissionDenied, "no permission to edit this credential")
		}
		return domain.Wrap(domain.KindInternal, err, "rewrite credential file")
	}

	hash, err := s.ledger.Commit([]string{name}, nil, fmt.Sprintf("update %q", name))
	if err != nil {
		return err
	}
	s.log.Info("edited credential", zap.String("name", name), zap.String("commit", hash))
	return nil
}

// Remove deletes a credential and commits it as `remove "<name>"`.
func (s *Store) Remove(name string) error {
	if err := s.ledger.Open(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return domain.E(domain.KindNotFound, "credential %q not found", name)
	}

	path := s.credentialPath(name)
	if info, err := os.Lstat(path); err == nil && info.IsDir() {
		// A group of credentials, not a credential.
		return domain.E(domain.KindNotFound, "credential %q not found", name)
	}

	err := os.Remove(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return domain.E(domain.KindNotFound, "credential %q not found", name)
	case errors.Is(err, fs.ErrPermission):
		return domain.E(domain.KindPermissionDenied, "no permission to remove this credential")
	case err != nil:
		return domain.Wrap(domain.KindInternal, err, "remove credential file")
	}

	hash, err := s.ledger.Commit(nil, []string{name}, fmt.Sprintf("remove %q", name))
	if err != nil {
		return err
	}
	s.log.Info("removed credential", zap.String("name", name), zap.String("commit", hash))
	return nil
}

// Move renames a credential and commits it as `move <target> to
// <destination>`. An existing destination file is overwritten; its previous
// content stays reachable through history.
func (s *Store) Move(target, destination string) error {
	if err := s.ledger.Open(); err != nil {
		return err
	}
	if err := validateName(target); err != nil {
		return domain.E(domain.KindNotFound, "credential %q not found", target)
	}
	if err := validateName(destination); err != nil {
		return err
	}

	src := s.credentialPath(target)
	dst := s.credentialPath(destination)

	if info, err := os.Lstat(src); err == nil && info.IsDir() {
		return domain.E(domain.KindNotFound, "credential %q not found", target)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o700); err != nil {
		return mapDirErr(err)
	}

	err := os.Rename(src, dst)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return domain.E(domain.KindNotFound, "credential %q not found", target)
	case errors.Is(err, fs.ErrPermission):
		return domain.E(domain.KindPermissionDenied, "no permission to move this credential")
	case err != nil:
		return domain.Wrap(domain.KindInternal, err, "rename credential file")
	}

	hash, err := s.ledger.Commit([]string{destination}, []string{target},
		fmt.Sprintf("move %s to %s", target, destination))
	if err != nil {
		return err
	}
	s.log.Info("moved credential",
		zap.String("target", target),
		zap.String("destination", destination),
		zap.String("commit", hash))
	return nil
}

// mapDirErr translates directory creation failures: a missing right is
// PermissionDenied, a file occupying a path segment is AlreadyExists.
func mapDirErr(err error) error {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return domain.E(domain.KindPermissionDenied, "no permission to create a subdirectory")
	case errors.Is(err, syscall.ENOTDIR), errors.Is(err, fs.ErrExist):
		return domain.E(domain.KindAlreadyExists, "a credential occupies part of this path")
	default:
		return domain.Wrap(domain.KindInternal, err, "create credential directories")
	}
}
