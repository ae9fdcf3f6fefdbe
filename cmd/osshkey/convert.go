package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/postalsys/osshkey"
	"github.com/postalsys/osshkey/internal/cliconfig"
)

func convertCmd() *cobra.Command {
	var (
		configPath    string
		outPath       string
		cipherName    string
		kdfName       string
		kdfRounds     int
		include       string
		noOverride    bool
		askPassIn     bool
		askPassOut    bool
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Repack an openssh-key-v1 file with a different cipher, KDF, or key subset",
		Long: `convert parses a private-key file and writes it back out, optionally
changing the cipher, the KDF, which keys are included (--include), and
whether each public half is rewritten from its private half before
packing (the default; disable with --no-override-public).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliconfig.Load(configPath)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			var passIn osshkey.PassphraseProvider
			if askPassIn {
				passIn = interactivePassphrase()
			}

			list, err := osshkey.FromString(string(data), passIn, nil)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			if cipherName == "" {
				cipherName, _ = list.Header["cipher"].(string)
			}
			if kdfName == "" {
				kdfName, _ = list.Header["kdf"].(string)
			}
			if kdfRounds == 0 {
				kdfRounds = cfg.Defaults.KDFRounds
			}

			list.Header["cipher"] = cipherName
			list.Header["kdf"] = kdfName
			if kdfName == "bcrypt" {
				salt, err := randomSalt(16)
				if err != nil {
					return err
				}
				list.KDFOptions = osshkey.Record{"salt": salt, "rounds": uint32(kdfRounds)}
			} else {
				list.KDFOptions = osshkey.Record{}
			}

			opts := osshkey.PackOptions{NoOverridePublicWithPrivate: noOverride}
			if include != "" {
				indices, err := parseIncludeIndices(include)
				if err != nil {
					return err
				}
				opts.IncludeIndices = indices
			}

			var passOut osshkey.PassphraseProvider
			if kdfName != "none" {
				if askPassOut {
					passOut = confirmedPassphrase()
				} else {
					passOut = passIn
				}
			}

			out, err := list.PackString(opts, passOut)
			if err != nil {
				return fmt.Errorf("failed to pack: %w", err)
			}

			if outPath == "" {
				outPath = args[0]
			}
			if err := os.WriteFile(outPath, []byte(out), 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}

			fmt.Printf("wrote %s (cipher=%s kdf=%s keys=%d)\n", outPath, cipherName, kdfName, list.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to CLI config file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path (default: overwrite the input file)")
	cmd.Flags().StringVar(&cipherName, "cipher", "", "Target cipher (none, aes128-ctr, aes192-ctr, aes256-ctr, aes256-cbc)")
	cmd.Flags().StringVar(&kdfName, "kdf", "", "Target KDF (none, bcrypt)")
	cmd.Flags().IntVar(&kdfRounds, "kdf-rounds", 0, "bcrypt_pbkdf round count (default: CLI config default)")
	cmd.Flags().StringVar(&include, "include", "", "Comma-separated key indices to keep, in order (default: all)")
	cmd.Flags().BoolVar(&noOverride, "no-override-public", false, "Keep each pair's stored public half instead of deriving it from the private half")
	cmd.Flags().BoolVarP(&askPassIn, "passphrase-in", "i", false, "Prompt for the input file's passphrase")
	cmd.Flags().BoolVarP(&askPassOut, "passphrase-out", "O", false, "Prompt for a new output passphrase instead of reusing the input one")

	return cmd
}

func parseIncludeIndices(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid --include index %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}
