package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rspass"
)

var generateLength int

// insert <name> [key=value...]: encrypt and store a new credential.
func insertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert <name> [key=value...]",
		Short: "Encrypt and store a new credential",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := parseMetadata(args[1:])
			if err != nil {
				return err
			}

			var secret string
			if generateLength > 0 {
				if secret, err = rspass.GeneratePassword(generateLength); err != nil {
					return err
				}
			} else if secret, err = readSecretConfirm("Secret: "); err != nil {
				return err
			}

			if err := store.Insert(args[0], secret, meta); err != nil {
				return err
			}
			if generateLength > 0 {
				fmt.Printf("Stored %s with generated secret: %s\n", args[0], secret)
			} else {
				fmt.Printf("Stored %s\n", args[0])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&generateLength, "generate", 0, "generate a random secret of this length instead of prompting")
	return cmd
}

func parseMetadata(args []string) (rspass.Metadata, error) {
	var meta rspass.Metadata
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("metadata must be key=value, got %q", arg)
		}
		meta = meta.Set(key, value)
	}
	return meta, nil
}
