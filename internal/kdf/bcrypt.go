package kdf

import (
	"fmt"

	"github.com/postalsys/osshkey/internal/wire"
)

// bcryptKDF implements "bcrypt": kdf_options carries a salt and a round
// count, consumed by bcryptPBKDF.
type bcryptKDF struct{}

func (bcryptKDF) Name() string { return "bcrypt" }

func (bcryptKDF) OptionsSchema() wire.Schema {
	return wire.Schema{
		{Name: "salt", Tag: wire.TagBytes},
		{Name: "rounds", Tag: wire.TagUint32},
	}
}

func (bcryptKDF) DeriveKey(options wire.Record, passphrase string, keyLen, ivLen int) (key, iv []byte, err error) {
	salt, ok := options["salt"].([]byte)
	if !ok {
		return nil, nil, fmt.Errorf("bcrypt: kdf_options missing salt")
	}
	rounds, ok := toInt(options["rounds"])
	if !ok {
		return nil, nil, fmt.Errorf("bcrypt: kdf_options missing rounds")
	}

	material, err := bcryptPBKDF([]byte(passphrase), salt, rounds, keyLen+ivLen)
	if err != nil {
		return nil, nil, err
	}
	return material[:keyLen], material[keyLen : keyLen+ivLen], nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case uint32:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
