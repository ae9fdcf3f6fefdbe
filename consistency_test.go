package osshkey

import "testing"

func TestCheckConsistency_NoWarningWhenConsistent(t *testing.T) {
	pair := ed25519Pair(0x11, 0x12, "ok@example.com")
	diag := NewSliceDiagnostics()
	checkConsistency(pair, 0, diag)
	if len(diag.Items()) != 0 {
		t.Errorf("expected no diagnostics, got %v", diag.Items())
	}
}

func TestCheckConsistency_UnknownKeyTypeIsSilent(t *testing.T) {
	pair := PublicPrivateKeyPair{
		Public:  PublicKey{Header: Record{"key_type": "ssh-dsa"}},
		Private: PrivateKey{Header: Record{"key_type": "ssh-dsa"}},
	}
	diag := NewSliceDiagnostics()
	checkConsistency(pair, 3, diag)
	if len(diag.Items()) != 0 {
		t.Errorf("expected no diagnostics for an unregistered key type, got %v", diag.Items())
	}
}

func TestCheckConsistency_NilDiagnosticsSinkDoesNotPanic(t *testing.T) {
	pair := PublicPrivateKeyPair{
		Public:  PublicKey{Header: Record{"key_type": "ssh-ed25519"}},
		Private: PrivateKey{Header: Record{"key_type": "ssh-rsa"}},
	}
	checkConsistency(pair, 0, nil)
}
