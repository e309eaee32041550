package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"schema-context/internal/types"
)

// DiagnosticSink collects the non-fatal conditions raised during one
// document's conversion and mirrors each onto the log. The assembler
// creates one sink per document.
type DiagnosticSink struct {
	diags []types.Diagnostic
}

func NewDiagnosticSink() *DiagnosticSink {
	return &DiagnosticSink{}
}

func (s *DiagnosticSink) Report(ctx context.Context, kind types.DiagnosticKind, keyword string, detail string) {
	s.diags = append(s.diags, types.Diagnostic{Kind: kind, Keyword: keyword, Detail: detail})
	log.Ctx(ctx).Warn().
		Str("kind", string(kind)).
		Str("keyword", keyword).
		Msg(detail)
}

// Diagnostics returns everything reported so far, in order.
func (s *DiagnosticSink) Diagnostics() []types.Diagnostic {
	return append([]types.Diagnostic(nil), s.diags...)
}
