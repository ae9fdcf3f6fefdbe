package osshkey

import (
	"fmt"

	"github.com/postalsys/osshkey/internal/wire"
)

// FormatError reports that a byte stream does not contain a well-formed
// openssh-key-v1 container (bad magic, unknown field layout, bad armor).
// It is always fatal: callers cannot recover a PrivateKeyList from data
// that fails this check.
type FormatError = wire.FormatError

// InsufficientData reports that the byte stream ran out before a format
// instruction could be satisfied (e.g. a length-prefixed field claims
// more bytes than remain).
type InsufficientData = wire.InsufficientData

// DecodingError reports that a value read off the wire is syntactically
// present but semantically invalid (e.g. invalid UTF-8 in a STRING field).
type DecodingError = wire.DecodingError

func newFormatError(format string, args ...any) *FormatError {
	return wire.NewFormatError(format, args...)
}

func newDecodingError(format string, args ...any) *DecodingError {
	return wire.NewDecodingError(format, args...)
}

// ErrNotAKeyPair is returned by FromList when an element isn't a valid
// PublicPrivateKeyPair. The message case matches the original library's
// exact ValueError text.
var ErrNotAKeyPair = fmt.Errorf("Not a key pair")

// ErrNoPassphraseProvider is returned when a key requires a passphrase to
// decrypt and the caller supplied no PassphraseProvider.
var ErrNoPassphraseProvider = fmt.Errorf("key is encrypted but no passphrase provider was configured")

// indexError mirrors the original library's IndexError message shape so
// behavior grounded in its test suite ("index ... out of range") is
// reproducible.
func indexError(index, length int) error {
	return fmt.Errorf("index %d out of range for list of length %d", index, length)
}
