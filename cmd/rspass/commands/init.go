package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the credential repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := store.Init()
			if err != nil {
				return err
			}
			fmt.Printf("Initialized credential repository at %s\n", path)
			return nil
		},
	}
}
