package kdf

import "github.com/postalsys/osshkey/internal/wire"

// noneKDF implements "none": no passphrase is consumed, and derive_key
// always yields empty key/iv material (the cipher "none" ignores both).
type noneKDF struct{}

func (noneKDF) Name() string { return "none" }

func (noneKDF) OptionsSchema() wire.Schema { return wire.Schema{} }

func (noneKDF) DeriveKey(_ wire.Record, _ string, _, _ int) (key, iv []byte, err error) {
	return nil, nil, nil
}
