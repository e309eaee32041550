package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"schema-context/internal/core"
	"schema-context/internal/shared"
	"schema-context/internal/types"
)

// Convert transforms one schema document into a context document and
// writes it out. The output path defaults to the schema's own
// directory with the ".context.jsonld" extension.
func (s Service) Convert(ctx context.Context, req ConvertRequest) (ConvertResult, error) {
	schemaPath := strings.TrimSpace(req.SchemaPath)
	if schemaPath == "" {
		return ConvertResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema file path is required")
	}
	if strings.TrimSpace(req.Namespace) == "" {
		return ConvertResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("namespace prefix is required")
	}
	if strings.TrimSpace(req.NamespaceURI) == "" {
		return ConvertResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("namespace URI is required")
	}

	schema, err := s.Schemas.LoadSchema(schemaPath)
	if err != nil {
		return ConvertResult{}, err
	}

	acc := types.NewAccumulator()
	assembler := core.NewAssembler()
	document, diags, err := assembler.Convert(ctx, schema, req.Namespace, req.NamespaceURI, acc)
	if err != nil {
		return ConvertResult{}, err
	}

	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(schemaPath), shared.ContextFileName(schemaPath))
	}
	if err := s.Contexts.WriteContext(outputPath, document); err != nil {
		return ConvertResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("schema", schemaPath).
		Str("output", outputPath).
		Int("diagnostics", len(diags)).
		Msg("schema converted")
	return ConvertResult{
		OutputPath:         outputPath,
		Diagnostics:        diags,
		AdditionalContexts: acc.Contexts(),
	}, nil
}
