package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func remoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Manage the synchronization remote",
	}
	cmd.AddCommand(remoteAddCmd())
	return cmd
}

func remoteAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <uri>",
		Short: "Register the origin remote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.AddRemote(args[0]); err != nil {
				return err
			}
			fmt.Printf("Added remote %s\n", args[0])
			return nil
		},
	}
}
