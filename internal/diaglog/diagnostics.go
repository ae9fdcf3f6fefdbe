package diaglog

import (
	"log/slog"

	"github.com/postalsys/osshkey"
)

// SlogDiagnostics adapts osshkey.Diagnostics onto a *slog.Logger, so parse
// warnings (check-int mismatches, bad padding, excess bytes) flow through
// the same structured logger as everything else the CLI emits.
type SlogDiagnostics struct {
	logger *slog.Logger
}

// NewSlogDiagnostics wraps logger as an osshkey.Diagnostics sink. A nil
// logger falls back to NopLogger.
func NewSlogDiagnostics(logger *slog.Logger) *SlogDiagnostics {
	if logger == nil {
		logger = NopLogger()
	}
	return &SlogDiagnostics{logger: logger}
}

// Warn logs d at warn level, attaching KeyKeyIndex when d concerns a
// specific pair.
func (s *SlogDiagnostics) Warn(d osshkey.Diagnostic) {
	if d.KeyIndex < 0 {
		s.logger.Warn(d.Message)
		return
	}
	s.logger.Warn(d.Message, KeyKeyIndex, d.KeyIndex)
}
