package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/postalsys/osshkey"
	"github.com/postalsys/osshkey/internal/cliconfig"
)

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

func wizardCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Interactively assemble an openssh-key-v1 file from existing key material",
		Long: `wizard walks through picking a key type, pasting in existing ed25519
(hex-encoded) or RSA (decimal) key material, choosing a cipher and KDF, and
writing the result to a file.

wizard never generates new cryptographic key material: it packages key
material you already have into the openssh-key-v1 container.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliconfig.Load(configPath)
			if err != nil {
				return err
			}
			return runWizard(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to CLI config file")

	return cmd
}

func runWizard(cfg *cliconfig.Config) error {
	fmt.Println(bannerStyle.Render("osshkey wizard"))
	fmt.Println("Assemble an existing key pair into an openssh-key-v1 file.")
	fmt.Println()

	var (
		keyType    string
		comment    = cfg.Defaults.Comment
		cipherName = cfg.Defaults.Cipher
		kdfName    = cfg.Defaults.KDF
		roundsStr  = strconv.Itoa(cfg.Defaults.KDFRounds)
		outPath    = "id_osshkey"
	)

	typeForm := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Key type").
			Options(huh.NewOption("ssh-ed25519", "ssh-ed25519"), huh.NewOption("ssh-rsa", "ssh-rsa")).
			Value(&keyType),
	))
	if err := typeForm.Run(); err != nil {
		return fmt.Errorf("wizard cancelled: %w", err)
	}

	var (
		pair osshkey.PublicPrivateKeyPair
		err  error
	)
	switch keyType {
	case "ssh-ed25519":
		pair, err = askEd25519Material()
	case "ssh-rsa":
		pair, err = askRSAMaterial()
	default:
		return fmt.Errorf("unsupported key type %q", keyType)
	}
	if err != nil {
		return err
	}

	return finishWizard(pair, comment, cipherName, kdfName, roundsStr, outPath)
}

func askEd25519Material() (osshkey.PublicPrivateKeyPair, error) {
	var privHex string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Private key bytes (64-byte seed+public, hex-encoded)").
			Value(&privHex),
	))
	if err := form.Run(); err != nil {
		return osshkey.PublicPrivateKeyPair{}, fmt.Errorf("wizard cancelled: %w", err)
	}

	priv, err := hex.DecodeString(privHex)
	if err != nil || len(priv) != 64 {
		return osshkey.PublicPrivateKeyPair{}, fmt.Errorf("expected 64 hex-encoded bytes, got %d", len(priv))
	}
	pub := append([]byte(nil), priv[32:]...)

	return osshkey.PublicPrivateKeyPair{
		Public: osshkey.PublicKey{
			Header: osshkey.Record{"key_type": "ssh-ed25519"},
			Params: osshkey.Record{"public": pub},
			Footer: osshkey.Record{},
		},
		Private: osshkey.PrivateKey{
			Header: osshkey.Record{"key_type": "ssh-ed25519"},
			Params: osshkey.Record{"public": pub, "private": priv},
		},
	}, nil
}

func askRSAMaterial() (osshkey.PublicPrivateKeyPair, error) {
	var n, e, d, iqmp, p, q string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("n (modulus, decimal)").Value(&n),
		huh.NewInput().Title("e (public exponent, decimal)").Value(&e).Placeholder("65537"),
		huh.NewInput().Title("d (private exponent, decimal)").Value(&d),
		huh.NewInput().Title("iqmp (q^-1 mod p, decimal)").Value(&iqmp),
		huh.NewInput().Title("p (decimal)").Value(&p),
		huh.NewInput().Title("q (decimal)").Value(&q),
	))
	if err := form.Run(); err != nil {
		return osshkey.PublicPrivateKeyPair{}, fmt.Errorf("wizard cancelled: %w", err)
	}

	values := map[string]string{"n": n, "e": e, "d": d, "iqmp": iqmp, "p": p, "q": q}
	parsed := make(map[string]*big.Int, len(values))
	for name, s := range values {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return osshkey.PublicPrivateKeyPair{}, fmt.Errorf("invalid decimal integer for %s: %q", name, s)
		}
		parsed[name] = v
	}

	return osshkey.PublicPrivateKeyPair{
		Public: osshkey.PublicKey{
			Header: osshkey.Record{"key_type": "ssh-rsa"},
			Params: osshkey.Record{"e": parsed["e"], "n": parsed["n"]},
			Footer: osshkey.Record{},
		},
		Private: osshkey.PrivateKey{
			Header: osshkey.Record{"key_type": "ssh-rsa"},
			Params: osshkey.Record{
				"n":    parsed["n"],
				"e":    parsed["e"],
				"d":    parsed["d"],
				"iqmp": parsed["iqmp"],
				"p":    parsed["p"],
				"q":    parsed["q"],
			},
		},
	}, nil
}

func finishWizard(pair osshkey.PublicPrivateKeyPair, comment, cipherName, kdfName, roundsStr, outPath string) error {
	var passphrase string

	fields := []huh.Field{
		huh.NewInput().Title("Comment").Value(&comment),
		huh.NewSelect[string]().
			Title("Cipher").
			Options(
				huh.NewOption("none", "none"),
				huh.NewOption("aes128-ctr", "aes128-ctr"),
				huh.NewOption("aes192-ctr", "aes192-ctr"),
				huh.NewOption("aes256-ctr", "aes256-ctr"),
				huh.NewOption("aes256-cbc", "aes256-cbc"),
			).
			Value(&cipherName),
		huh.NewSelect[string]().
			Title("KDF").
			Options(huh.NewOption("none", "none"), huh.NewOption("bcrypt", "bcrypt")).
			Value(&kdfName),
		huh.NewInput().Title("bcrypt_pbkdf rounds").Value(&roundsStr),
		huh.NewInput().
			Title("Passphrase (required when KDF is bcrypt)").
			EchoMode(huh.EchoModePassword).
			Value(&passphrase),
		huh.NewInput().Title("Output path").Value(&outPath),
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return fmt.Errorf("wizard cancelled: %w", err)
	}

	pair.Private.Footer = osshkey.Record{"comment": comment}

	rounds, err := strconv.Atoi(roundsStr)
	if err != nil || rounds < 1 {
		return fmt.Errorf("invalid bcrypt_pbkdf rounds: %q", roundsStr)
	}

	var kdfOptions osshkey.Record
	if kdfName == "bcrypt" {
		salt, err := randomSalt(16)
		if err != nil {
			return err
		}
		kdfOptions = osshkey.Record{"salt": salt, "rounds": uint32(rounds)}
	}

	list, err := osshkey.FromList([]osshkey.PublicPrivateKeyPair{pair}, cipherName, kdfName, kdfOptions)
	if err != nil {
		return fmt.Errorf("failed to assemble key list: %w", err)
	}

	var provider osshkey.PassphraseProvider
	if kdfName != "none" {
		if passphrase == "" {
			return fmt.Errorf("kdf %q requires a non-empty passphrase", kdfName)
		}
		provider = osshkey.StaticPassphrase(passphrase)
	}

	out, err := list.PackString(osshkey.PackOptions{}, provider)
	if err != nil {
		return fmt.Errorf("failed to pack key: %w", err)
	}

	if err := os.WriteFile(outPath, []byte(out), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("\nwrote %s\n", outPath)
	return nil
}
