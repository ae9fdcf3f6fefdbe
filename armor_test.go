package osshkey

import (
	"strings"
	"testing"
)

func TestArmor_WrapsAtWrapCol(t *testing.T) {
	text := armor(fixedBytes(200, 0xAB))
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if lines[0] != beginLine {
		t.Fatalf("expected first line %q, got %q", beginLine, lines[0])
	}
	if lines[len(lines)-1] != endLine {
		t.Fatalf("expected last line %q, got %q", endLine, lines[len(lines)-1])
	}
	for _, ln := range lines[1 : len(lines)-1] {
		if len(ln) > wrapCol {
			t.Errorf("body line exceeds wrapCol (%d): %q", wrapCol, ln)
		}
	}
}

func TestArmor_EmptyPayload(t *testing.T) {
	text := armor(nil)
	if !strings.HasPrefix(text, beginLine+"\n") || !strings.HasSuffix(text, endLine+"\n") {
		t.Errorf("unexpected framing for empty payload: %q", text)
	}
}
