package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen <name> <email>",
		Short: "Generate the key pair protecting the store",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass := passphrase
			if pass == "" {
				var err error
				if pass, err = readSecretConfirm("Passphrase: "); err != nil {
					return err
				}
			}

			dir, err := store.GenerateKeys(args[0], args[1], pass)
			if err != nil {
				return err
			}
			fp, err := store.Fingerprint()
			if err != nil {
				return err
			}
			fmt.Printf("Keys stored in %s\nFingerprint: %s\n", dir, fp)
			return nil
		},
	}
}
