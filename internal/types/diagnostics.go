package types

type DiagnosticKind string

const (
	// DiagUnsupportedKeyword marks a schema keyword outside the dispatch table.
	DiagUnsupportedKeyword DiagnosticKind = "unsupported-keyword"
	// DiagUnsupportedFeature marks a known keyword used in an unsupported
	// shape, such as tuple-form items or a multi-valued type.
	DiagUnsupportedFeature DiagnosticKind = "unsupported-feature"
	// DiagUnrecognizedValue marks a known keyword whose value is outside
	// the mapped enumeration.
	DiagUnrecognizedValue DiagnosticKind = "unrecognized-value"
	// DiagKeyConflict marks a duplicate definition; the first value wins.
	DiagKeyConflict DiagnosticKind = "key-conflict"
)

// Diagnostic is one non-fatal condition raised while converting a
// document. Diagnostics never abort processing.
type Diagnostic struct {
	Kind    DiagnosticKind
	Keyword string
	Detail  string
}
