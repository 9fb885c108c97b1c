package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rspass"
)

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [length]",
		Short: "Print a random password",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length := 16
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("length must be a number, got %q", args[0])
				}
				length = n
			}
			pw, err := rspass.GeneratePassword(length)
			if err != nil {
				return err
			}
			fmt.Println(pw)
			return nil
		},
	}
}
