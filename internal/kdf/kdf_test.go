package kdf

import (
	"bytes"
	"testing"

	"github.com/postalsys/osshkey/internal/wire"
)

func TestDefaultRegistry_Lookup(t *testing.T) {
	for _, name := range []string{"none", "bcrypt"} {
		if _, err := Default.Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
}

func TestNoneKDF_DeriveKey(t *testing.T) {
	k, _ := Default.Lookup("none")
	key, iv, err := k.DeriveKey(wire.Record{}, "", 32, 16)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if len(key) != 0 || len(iv) != 0 {
		t.Errorf("expected empty key/iv from none KDF, got key=%d iv=%d bytes", len(key), len(iv))
	}
}

func TestBcryptKDF_Deterministic(t *testing.T) {
	k, _ := Default.Lookup("bcrypt")
	opts := wire.Record{
		"salt":   bytes.Repeat([]byte{0x01}, 16),
		"rounds": uint32(4),
	}

	key1, iv1, err := k.DeriveKey(opts, "passphrase", 32, 16)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	key2, iv2, err := k.DeriveKey(opts, "passphrase", 32, 16)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if !bytes.Equal(key1, key2) || !bytes.Equal(iv1, iv2) {
		t.Error("bcrypt KDF should be deterministic for the same inputs")
	}
	if len(key1) != 32 || len(iv1) != 16 {
		t.Errorf("unexpected lengths: key=%d iv=%d", len(key1), len(iv1))
	}
}

func TestBcryptKDF_DifferentPassphrasesDiffer(t *testing.T) {
	k, _ := Default.Lookup("bcrypt")
	opts := wire.Record{
		"salt":   bytes.Repeat([]byte{0x02}, 16),
		"rounds": uint32(4),
	}

	key1, _, err := k.DeriveKey(opts, "passphrase-a", 32, 16)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	key2, _, err := k.DeriveKey(opts, "passphrase-b", 32, 16)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if bytes.Equal(key1, key2) {
		t.Error("different passphrases should derive different keys")
	}
}

func TestBcryptPBKDF_RejectsEmptySaltOrPassword(t *testing.T) {
	if _, err := bcryptPBKDF(nil, []byte("salt"), 4, 32); err == nil {
		t.Error("expected error for empty password")
	}
	if _, err := bcryptPBKDF([]byte("pass"), nil, 4, 32); err == nil {
		t.Error("expected error for empty salt")
	}
}
