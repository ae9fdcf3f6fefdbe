package keytype

import "github.com/postalsys/osshkey/internal/wire"

// ed25519KeyType implements the "ssh-ed25519" variant. Grounded on the
// field-width constants golang.org/x/crypto/ed25519 exposes
// (SeedSize == 32, PrivateKeySize == 64): the private params record
// carries the 32-byte public key again ahead of the 64-byte private key
// (32-byte seed followed by the 32-byte public key), matching what
// OpenSSH itself writes.
type ed25519KeyType struct{}

func (ed25519KeyType) Name() string { return "ssh-ed25519" }

func (ed25519KeyType) PublicSchema() wire.Schema {
	return wire.Schema{wire.Fixed("public", 32)}
}

func (ed25519KeyType) PrivateSchema() wire.Schema {
	return wire.Schema{
		wire.Fixed("public", 32),
		wire.Fixed("private", 64),
	}
}

func (ed25519KeyType) PublicSubset(private wire.Record) wire.Record {
	return wire.Record{"public": private["public"]}
}
