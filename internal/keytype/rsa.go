package keytype

import "github.com/postalsys/osshkey/internal/wire"

// rsaKeyType implements the "ssh-rsa" variant. Field order and the
// public subset {e, n} follow the wire layout OpenSSH itself writes;
// the core never constructs a *rsa.PrivateKey from these fields — they
// stay as opaque MPINT values, since no third-party RSA library in the
// example pack has a slot for a parsed key here.
type rsaKeyType struct{}

func (rsaKeyType) Name() string { return "ssh-rsa" }

func (rsaKeyType) PublicSchema() wire.Schema {
	return wire.Schema{
		{Name: "e", Tag: wire.TagMPInt},
		{Name: "n", Tag: wire.TagMPInt},
	}
}

func (rsaKeyType) PrivateSchema() wire.Schema {
	return wire.Schema{
		{Name: "n", Tag: wire.TagMPInt},
		{Name: "e", Tag: wire.TagMPInt},
		{Name: "d", Tag: wire.TagMPInt},
		{Name: "iqmp", Tag: wire.TagMPInt},
		{Name: "p", Tag: wire.TagMPInt},
		{Name: "q", Tag: wire.TagMPInt},
	}
}

func (rsaKeyType) PublicSubset(private wire.Record) wire.Record {
	return wire.Record{
		"e": private["e"],
		"n": private["n"],
	}
}
