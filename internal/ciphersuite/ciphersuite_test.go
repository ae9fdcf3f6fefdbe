package ciphersuite

import (
	"bytes"
	"testing"
)

func TestDefaultRegistry_Lookup(t *testing.T) {
	for _, name := range []string{"none", "aes128-ctr", "aes192-ctr", "aes256-ctr", "aes256-cbc"} {
		if _, err := Default.Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
}

func TestNoneCipher_RoundTrip(t *testing.T) {
	c, _ := Default.Lookup("none")
	plaintext := []byte("hello world")
	ct, err := c.Encrypt(nil, nil, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	pt, err := c.Decrypt(nil, nil, ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Errorf("round trip mismatch: got %q, want %q", pt, plaintext)
	}
}

func TestAESCTR_RoundTrip(t *testing.T) {
	c, _ := Default.Lookup("aes256-ctr")
	key := bytes.Repeat([]byte{0x11}, c.KeyLength())
	iv := bytes.Repeat([]byte{0x22}, c.IVLength())
	plaintext := bytes.Repeat([]byte("A"), 37)

	ct, err := c.Encrypt(key, iv, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if bytes.Equal(ct, plaintext) {
		t.Fatal("ciphertext should differ from plaintext")
	}
	pt, err := c.Decrypt(key, iv, ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Errorf("round trip mismatch: got %q, want %q", pt, plaintext)
	}
}

func TestAESCBC_RoundTrip(t *testing.T) {
	c, _ := Default.Lookup("aes256-cbc")
	key := bytes.Repeat([]byte{0x33}, c.KeyLength())
	iv := bytes.Repeat([]byte{0x44}, c.IVLength())
	plaintext := bytes.Repeat([]byte("B"), 32)

	ct, err := c.Encrypt(key, iv, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	pt, err := c.Decrypt(key, iv, ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Errorf("round trip mismatch: got %q, want %q", pt, plaintext)
	}
}

func TestAESCBC_RejectsUnalignedLength(t *testing.T) {
	c, _ := Default.Lookup("aes256-cbc")
	key := bytes.Repeat([]byte{0x55}, c.KeyLength())
	iv := bytes.Repeat([]byte{0x66}, c.IVLength())
	if _, err := c.Encrypt(key, iv, []byte("not 16 aligned")); err == nil {
		t.Error("expected error for unaligned plaintext length")
	}
}
