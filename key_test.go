package osshkey

import "testing"

func TestPublicKey_KeyType(t *testing.T) {
	k := PublicKey{Header: Record{"key_type": "ssh-ed25519"}}
	if k.KeyType() != "ssh-ed25519" {
		t.Errorf("got %q", k.KeyType())
	}
	if (PublicKey{}).KeyType() != "" {
		t.Error("expected empty key type for a zero-value PublicKey")
	}
}

func TestPrivateKey_Comment(t *testing.T) {
	k := PrivateKey{Footer: Record{"comment": "me@example.com"}}
	if k.Comment() != "me@example.com" {
		t.Errorf("got %q", k.Comment())
	}
	if (PrivateKey{}).Comment() != "" {
		t.Error("expected empty comment for a zero-value PrivateKey")
	}
}

func TestPublicKey_Equal(t *testing.T) {
	a := PublicKey{Header: Record{"key_type": "ssh-ed25519"}, Params: Record{"public": []byte{1, 2}}}
	b := PublicKey{Header: Record{"key_type": "ssh-ed25519"}, Params: Record{"public": []byte{1, 2}}}
	c := PublicKey{Header: Record{"key_type": "ssh-ed25519"}, Params: Record{"public": []byte{9, 9}}}
	if !a.Equal(b) {
		t.Error("expected a == b")
	}
	if a.Equal(c) {
		t.Error("expected a != c")
	}
}

func TestPublicPrivateKeyPair_Equal(t *testing.T) {
	p1 := ed25519Pair(0x01, 0x02, "x")
	p2 := ed25519Pair(0x01, 0x02, "x")
	p3 := ed25519Pair(0x01, 0x02, "y")
	if !p1.Equal(p2) {
		t.Error("expected p1 == p2")
	}
	if p1.Equal(p3) {
		t.Error("expected p1 != p3 (different comment)")
	}
}

func TestCloneRecord_IsIndependent(t *testing.T) {
	orig := Record{"a": 1}
	clone := cloneRecord(orig)
	clone["a"] = 2
	if orig["a"] != 1 {
		t.Error("mutating the clone mutated the original")
	}
}
