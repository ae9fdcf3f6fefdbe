package keytype

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/postalsys/osshkey/internal/wire"
)

func TestDefaultRegistry_Lookup(t *testing.T) {
	for _, name := range []string{"ssh-ed25519", "ssh-rsa"} {
		if _, err := Default.Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
}

func TestDefaultRegistry_LookupUnknown(t *testing.T) {
	if _, err := Default.Lookup("ssh-dsa"); err == nil {
		t.Error("expected error looking up unregistered key type")
	}
}

func TestEd25519PublicSubset(t *testing.T) {
	kt, _ := Default.Lookup("ssh-ed25519")
	pub := []byte("0123456789012345678901234567890X")[:32]
	priv := wire.Record{
		"public":  pub,
		"private": make([]byte, 64),
	}
	subset := kt.PublicSubset(priv)
	if !reflect.DeepEqual(subset, wire.Record{"public": pub}) {
		t.Errorf("unexpected public subset: %#v", subset)
	}
}

func TestRSAPublicSubset(t *testing.T) {
	kt, _ := Default.Lookup("ssh-rsa")
	e := big.NewInt(65537)
	n := big.NewInt(12345)
	priv := wire.Record{
		"n": n, "e": e, "d": big.NewInt(1), "iqmp": big.NewInt(1),
		"p": big.NewInt(1), "q": big.NewInt(1),
	}
	subset := kt.PublicSubset(priv)
	if subset["e"] != e || subset["n"] != n {
		t.Errorf("unexpected public subset: %#v", subset)
	}
}

func TestRegistry_Isolated(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Lookup("ssh-ed25519"); err == nil {
		t.Error("fresh registry should not carry the default key types")
	}
	r.Register(ed25519KeyType{})
	if _, err := r.Lookup("ssh-ed25519"); err != nil {
		t.Errorf("Lookup after Register: %v", err)
	}
}
