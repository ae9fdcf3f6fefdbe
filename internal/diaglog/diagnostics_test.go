package diaglog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/postalsys/osshkey"
)

func TestSlogDiagnostics_Warn(t *testing.T) {
	var buf bytes.Buffer
	logger := newLoggerWithWriter("debug", "text", &buf)
	d := NewSlogDiagnostics(logger)

	d.Warn(osshkey.Diagnostic{Message: "Incorrect padding at end of ciphertext", KeyIndex: -1})
	d.Warn(osshkey.Diagnostic{Message: "Excess bytes in key", KeyIndex: 2})

	out := buf.String()
	if !strings.Contains(out, "Incorrect padding at end of ciphertext") {
		t.Errorf("missing unindexed warning: %s", out)
	}
	if !strings.Contains(out, "Excess bytes in key") || !strings.Contains(out, "key_index=2") {
		t.Errorf("missing indexed warning: %s", out)
	}
}

func TestSlogDiagnostics_NilLoggerFallsBackToNop(t *testing.T) {
	d := NewSlogDiagnostics(nil)
	d.Warn(osshkey.Diagnostic{Message: "should not panic"})
}
