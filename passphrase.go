package osshkey

// PassphraseProvider is an injectable callback that returns the passphrase
// to use for an encrypted key (§9 design note: "re-architect as an
// explicit callback parameter"). It is invoked at most once per FromBytes,
// FromString, or Pack call, and only when the chosen KDF is not "none".
//
// A nil PassphraseProvider is valid for unencrypted keys; using it where a
// passphrase is required fails with ErrNoPassphraseProvider rather than
// blocking or panicking.
type PassphraseProvider func() (string, error)

// StaticPassphrase returns a PassphraseProvider that always yields s. Handy
// for tests and for programmatic callers that already hold the passphrase.
func StaticPassphrase(s string) PassphraseProvider {
	return func() (string, error) { return s, nil }
}
