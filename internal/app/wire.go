package app

import (
	"go.uber.org/zap"

	"rspass/internal/config"
	"rspass/internal/domain"
	"rspass/internal/keys"
	"rspass/internal/ledger"
	"rspass/internal/store"
)

// Wire bundles the directories, key manager, ledger and store for the CLI.
type Wire struct {
	Dirs   *config.Dirs
	Keys   *keys.Manager
	Ledger domain.Ledger
	Store  *store.Store
	Log    *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	dirs := config.NewDirs()
	if cfg.DataDir != "" {
		if err := dirs.SetDataDir(cfg.DataDir); err != nil {
			return nil, err
		}
	}
	if cfg.ConfigDir != "" {
		if err := dirs.SetConfigDir(cfg.ConfigDir); err != nil {
			return nil, err
		}
	}

	km := keys.NewManager(dirs, log, cfg.KeyBits)
	led := ledger.NewOSLedger(dirs.DataDir(), log)
	st := store.NewStore(dirs, km, led, log)

	return &Wire{Dirs: dirs, Keys: km, Ledger: led, Store: st, Log: log}, nil
}
