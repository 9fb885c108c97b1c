package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rspass"
)

var (
	editSecret bool
	editSets   []string
	editUnsets []string
)

// edit <name>: rewrite an existing credential in place. Metadata sets are
// applied before unsets.
func editCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Rewrite an existing credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update rspass.CredentialUpdate
			for _, arg := range editSets {
				key, value, ok := strings.Cut(arg, "=")
				if !ok || key == "" {
					return fmt.Errorf("--set expects key=value, got %q", arg)
				}
				update.Metadata = append(update.Metadata, rspass.MetadataChange{Key: key, Value: value})
			}
			for _, key := range editUnsets {
				update.Metadata = append(update.Metadata, rspass.MetadataChange{Key: key, Remove: true})
			}
			if editSecret {
				secret, err := readSecretConfirm("New secret: ")
				if err != nil {
					return err
				}
				update.Secret = &secret
			}
			if update.Secret == nil && len(update.Metadata) == 0 {
				return fmt.Errorf("nothing to change, use --secret, --set or --unset")
			}

			pass, err := passphraseOrPrompt()
			if err != nil {
				return err
			}
			if err := store.Edit(args[0], pass, update); err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&editSecret, "secret", false, "prompt for a replacement secret")
	cmd.Flags().StringArrayVar(&editSets, "set", nil, "set a metadata entry (key=value, repeatable)")
	cmd.Flags().StringArrayVar(&editUnsets, "unset", nil, "drop a metadata entry (repeatable)")
	return cmd
}
