package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rspass"
)

var (
	dataDir    string
	configDir  string
	passphrase string
	verbose    bool

	username string
	token    string

	store *rspass.Store
)

func Execute() error {
	root := &cobra.Command{
		Use:   "rspass",
		Short: "Git-backed personal secret manager",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log := zap.NewNop()
			if verbose {
				var err error
				if log, err = zap.NewDevelopment(); err != nil {
					return err
				}
			}

			s, err := rspass.New(rspass.Config{
				DataDir:   dataDir,
				ConfigDir: configDir,
				Logger:    log,
			})
			if err != nil {
				return err
			}
			store = s
			return nil
		},
	}

	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "credential repository root (default platform data dir)")
	root.PersistentFlags().StringVar(&configDir, "config-dir", "", "key artifact dir (default platform config dir)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase unlocking the private key")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "log operations to stderr")

	root.AddCommand(
		initCmd(), keygenCmd(), insertCmd(), getCmd(), editCmd(),
		removeCmd(), moveCmd(), remoteCmd(), fetchCmd(), pushCmd(),
		generateCmd(),
	)
	return root.Execute()
}
