package core

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"schema-context/internal/types"
)

// Assembler drives the interpreter across one schema document and
// wraps the resulting fragment into a context document. It holds no
// state of its own; everything that outlives a document lives in the
// accumulator the caller supplies.
type Assembler struct{}

func NewAssembler() Assembler {
	return Assembler{}
}

// Convert interprets doc and returns its context document together
// with the diagnostics raised along the way. The namespace prefix and
// URI are mandatory per-document parameters; their absence is a
// configuration error, not a transform condition.
func (a Assembler) Convert(ctx context.Context, doc *types.SchemaNode, namespace string, nsuri string, acc *types.Accumulator) (*types.ContextDocument, []types.Diagnostic, error) {
	assert.NotEmpty(ctx, namespace, "namespace prefix must be set")
	assert.NotEmpty(ctx, nsuri, "namespace URI must be set")
	if strings.TrimSpace(namespace) == "" {
		return nil, nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("namespace prefix is required")
	}
	if strings.TrimSpace(nsuri) == "" {
		return nil, nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("namespace URI is required")
	}

	sink := NewDiagnosticSink()
	interpreter := NewInterpreter(namespace, acc, sink)
	fragment := interpreter.Process(ctx, doc, nil)

	// Declare the namespace the generated @id values expand against.
	fragment.Set(namespace, nsuri)

	document := types.NewContextDocument()
	document.Append(fragment)
	log.Ctx(ctx).Debug().
		Str("namespace", namespace).
		Int("keys", fragment.Len()).
		Int("diagnostics", len(sink.Diagnostics())).
		Msg("schema document converted")
	return document, sink.Diagnostics(), nil
}
