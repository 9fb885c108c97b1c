package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Upload the local history to the remote",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.Push(username, token); err != nil {
				return err
			}
			fmt.Println("Pushed")
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "remote username")
	cmd.Flags().StringVar(&token, "token", "", "remote access token")
	return cmd
}
