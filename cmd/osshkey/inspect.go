package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/postalsys/osshkey"
	"github.com/postalsys/osshkey/internal/cliconfig"
	"github.com/postalsys/osshkey/internal/diaglog"
)

func inspectCmd() *cobra.Command {
	var (
		configPath    string
		askPassphrase bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Parse an openssh-key-v1 file and print its structure",
		Long: `inspect parses a private-key file, prints its outer header (cipher,
KDF, key count), each key pair's type and comment, and any diagnostic
warnings raised while parsing (check-int mismatches, bad padding, excess
bytes, public/private inconsistencies).

Warnings never abort the parse: inspect always prints whatever it could
recover.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliconfig.Load(configPath)
			if err != nil {
				return err
			}
			logger := diaglog.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
			diag := diaglog.NewSlogDiagnostics(logger)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			var passphrase osshkey.PassphraseProvider
			if askPassphrase {
				passphrase = interactivePassphrase()
			}

			list, err := osshkey.FromString(string(data), passphrase, diag)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			printListSummary(args[0], list)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to CLI config file")
	cmd.Flags().BoolVarP(&askPassphrase, "passphrase", "P", false, "Prompt for a passphrase if the key is encrypted")

	return cmd
}

func printListSummary(path string, list *osshkey.PrivateKeyList) {
	cipher, _ := list.Header["cipher"].(string)
	kdf, _ := list.Header["kdf"].(string)

	fmt.Printf("%s\n", path)
	fmt.Printf("  cipher:      %s\n", cipher)
	fmt.Printf("  kdf:         %s\n", kdf)
	fmt.Printf("  ciphertext:  %s\n", humanize.Bytes(uint64(len(list.CipherBytes))))
	fmt.Printf("  padding:     %s\n", humanize.Bytes(uint64(len(list.DecipherPadding))))
	fmt.Printf("  keys:        %d\n", list.Len())

	for i := 0; i < list.Len(); i++ {
		pair, _ := list.Get(i)
		fmt.Printf("  [%d] %s", i, pair.Private.KeyType())
		if comment := pair.Private.Comment(); comment != "" {
			fmt.Printf(" (%s)", comment)
		}
		fmt.Println()
		if len(pair.Public.Remainder) > 0 {
			fmt.Printf("      excess public bytes: %s\n", humanize.Bytes(uint64(len(pair.Public.Remainder))))
		}
	}
}
