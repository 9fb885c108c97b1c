package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var full bool

func getCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Decrypt and print a credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := passphraseOrPrompt()
			if err != nil {
				return err
			}
			payload, err := store.Get(args[0], pass, full)
			if err != nil {
				return err
			}
			fmt.Println(payload)
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "print metadata along with the secret")
	return cmd
}
