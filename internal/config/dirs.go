package config

import (
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"

	"rspass/internal/domain"
)

// appDir is the folder name appended to the platform base directories.
const appDir = "rspass"

// Dirs carries the two locations rspass touches on disk: the data directory
// holding the credential repository and the config directory holding the key
// artifacts. A Dirs value is constructed once at startup and injected into
// the components that need it.
//
// Each location may be overridden exactly once, before its first use. After
// a location has been read or set, further overrides fail with
// ConfigAlreadySet. Dirs never creates directories; callers do that when
// they first write into them.
type Dirs struct {
	mu     sync.Mutex
	data   string
	config string
}

// NewDirs returns a Dirs resolving both locations to their platform
// defaults on first use.
func NewDirs() *Dirs { return &Dirs{} }

// DataDir returns the credential repository root, defaulting to the
// platform data home (e.g. ~/.local/share/rspass).
func (d *Dirs) DataDir() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.data == "" {
		d.data = filepath.Join(xdg.DataHome, appDir)
	}
	return d.data
}

// ConfigDir returns the key artifact directory, defaulting to the platform
// config home (e.g. ~/.config/rspass).
func (d *Dirs) ConfigDir() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.config == "" {
		d.config = filepath.Join(xdg.ConfigHome, appDir)
	}
	return d.config
}

// SetDataDir overrides the data directory. It fails with ConfigAlreadySet
// once the location has been resolved or previously overridden.
func (d *Dirs) SetDataDir(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.data != "" {
		return domain.E(domain.KindConfigAlreadySet, "data directory already set")
	}
	d.data = filepath.Clean(path)
	return nil
}

// SetConfigDir overrides the config directory. It fails with
// ConfigAlreadySet once the location has been resolved or previously
// overridden.
func (d *Dirs) SetConfigDir(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.config != "" {
		return domain.E(domain.KindConfigAlreadySet, "config directory already set")
	}
	d.config = filepath.Clean(path)
	return nil
}
