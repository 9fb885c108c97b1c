package commands

import (
	"fmt"
	"syscall"

	"golang.org/x/term"
)

// readSecret prints the prompt and reads a line from the terminal without
// echoing it.
func readSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(b), nil
}

// readSecretConfirm prompts twice and fails when the entries differ.
func readSecretConfirm(prompt string) (string, error) {
	first, err := readSecret(prompt)
	if err != nil {
		return "", err
	}
	again, err := readSecret("Confirm: ")
	if err != nil {
		return "", err
	}
	if first != again {
		return "", fmt.Errorf("entries do not match")
	}
	return first, nil
}

// passphraseOrPrompt returns the --passphrase flag value, prompting when it
// was not given.
func passphraseOrPrompt() (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	return readSecret("Passphrase: ")
}
