package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// move <name> <destination>: rename a credential, replacing any credential
// already at the destination.
func moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "move <name> <destination>",
		Aliases: []string{"mv"},
		Short:   "Rename a credential",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.Move(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Moved %s to %s\n", args[0], args[1])
			return nil
		},
	}
}
