package osshkey

import "fmt"

// Diagnostic is a single soft warning raised while parsing a PrivateKeyList.
// Parsing never aborts on a Diagnostic; it is recorded and the caller
// decides what to do with it.
type Diagnostic struct {
	// Message is one of the fixed warning strings in §7, e.g.
	// "Incorrect padding at end of ciphertext".
	Message string

	// KeyIndex is the pair index the diagnostic concerns, or -1 when the
	// diagnostic isn't about a specific pair (the check-int mismatch and
	// padding warnings).
	KeyIndex int
}

func (d Diagnostic) String() string {
	if d.KeyIndex < 0 {
		return d.Message
	}
	return fmt.Sprintf("key %d: %s", d.KeyIndex, d.Message)
}

// Diagnostics is the sink soft warnings are reported to during parse. A
// nil Diagnostics is never passed internally; callers who don't care use
// NewSliceDiagnostics() and ignore the result, or DiscardDiagnostics.
type Diagnostics interface {
	Warn(d Diagnostic)
}

// SliceDiagnostics accumulates every diagnostic it receives, in order.
type SliceDiagnostics struct {
	items []Diagnostic
}

// NewSliceDiagnostics returns an empty accumulating Diagnostics sink.
func NewSliceDiagnostics() *SliceDiagnostics {
	return &SliceDiagnostics{}
}

func (s *SliceDiagnostics) Warn(d Diagnostic) {
	s.items = append(s.items, d)
}

// Items returns the diagnostics recorded so far, in the order received.
func (s *SliceDiagnostics) Items() []Diagnostic {
	return s.items
}

// discardDiagnostics is used internally when the caller passes a nil sink.
type discardDiagnostics struct{}

func (discardDiagnostics) Warn(Diagnostic) {}

// DiscardDiagnostics is a Diagnostics sink that drops every warning.
var DiscardDiagnostics Diagnostics = discardDiagnostics{}

func warnf(d Diagnostics, keyIndex int, format string, args ...any) {
	if d == nil {
		d = DiscardDiagnostics
	}
	d.Warn(Diagnostic{Message: fmt.Sprintf(format, args...), KeyIndex: keyIndex})
}
