package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/postalsys/osshkey"
)

// promptPassphrase reads a passphrase from the terminal without echoing it.
func promptPassphrase(prompt string) (string, error) {
	fmt.Print(prompt)
	pwBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	return string(pwBytes), nil
}

// interactivePassphrase returns an osshkey.PassphraseProvider that prompts
// once, lazily, so unencrypted keys never touch the terminal.
func interactivePassphrase() osshkey.PassphraseProvider {
	var (
		cached   string
		prompted bool
	)
	return func() (string, error) {
		if prompted {
			return cached, nil
		}
		pw, err := promptPassphrase("Enter passphrase: ")
		if err != nil {
			return "", err
		}
		cached, prompted = pw, true
		return cached, nil
	}
}

// confirmedPassphrase prompts twice and fails on mismatch, for commands
// that write a new encrypted key.
func confirmedPassphrase() osshkey.PassphraseProvider {
	return func() (string, error) {
		pw, err := promptPassphrase("Enter passphrase: ")
		if err != nil {
			return "", err
		}
		confirm, err := promptPassphrase("Confirm passphrase: ")
		if err != nil {
			return "", err
		}
		if pw != confirm {
			return "", fmt.Errorf("passphrases do not match")
		}
		return pw, nil
	}
}
