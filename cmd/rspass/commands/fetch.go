package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"rspass"
)

// fetch: download the remote history and fast-forward the local branch when
// possible. Diverged histories are reported, never merged.
func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download and reconcile the remote history",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := store.Fetch(username, token)
			if err != nil {
				return err
			}
			switch status {
			case rspass.FetchFastForwarded:
				fmt.Println("Fast-forwarded to the remote tip")
			case rspass.FetchMergeRequired:
				fmt.Println("Local and remote histories diverged, resolve the merge manually")
			default:
				fmt.Println("Already up to date")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "remote username")
	cmd.Flags().StringVar(&token, "token", "", "remote access token")
	return cmd
}
