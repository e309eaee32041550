package app

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"schema-context/internal/core"
	"schema-context/internal/shared"
	"schema-context/internal/types"
)

const defaultMergedName = "context.json"

// Batch converts every schema document in a directory, sharing one
// accumulator across the run, and finishes by writing the merged
// context document. A document that fails to load or write is tallied
// and logged; it never aborts the rest of the batch.
func (s Service) Batch(ctx context.Context, req BatchRequest) (BatchResult, error) {
	inputDir := strings.TrimSpace(req.InputDir)
	if inputDir == "" {
		return BatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("input directory is required")
	}
	if strings.TrimSpace(req.Namespace) == "" {
		return BatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("namespace prefix is required")
	}
	if strings.TrimSpace(req.NamespaceURI) == "" {
		return BatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("namespace URI is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		outputDir = inputDir
	}
	mergedName := strings.TrimSpace(req.MergedName)
	if mergedName == "" {
		mergedName = defaultMergedName
	}

	names, err := discoverSchemas(inputDir, mergedName)
	if err != nil {
		return BatchResult{}, err
	}
	if len(names) == 0 {
		return BatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no schema documents found in input directory")
	}

	started := s.Clock()

	// One accumulator for the whole run; documents are processed
	// sequentially, so no locking is needed around it.
	acc := types.NewAccumulator()
	assembler := core.NewAssembler()
	result := BatchResult{}
	for _, name := range names {
		schemaPath := filepath.Join(inputDir, name)
		outName := shared.ContextFileName(name)
		if err := s.convertOne(ctx, assembler, acc, schemaPath, filepath.Join(outputDir, outName), req); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("schema", schemaPath).Msg("schema conversion failed")
			result.Failed++
			continue
		}
		acc.AddProduced(outName)
		result.Converted++
	}

	entries := append(acc.Produced(), acc.Contexts()...)
	entries = append(entries, req.ExtraContexts...)
	mergedPath := filepath.Join(outputDir, mergedName)
	if err := s.Contexts.WriteMergedContext(mergedPath, entries); err != nil {
		return BatchResult{}, err
	}

	result.Produced = acc.Produced()
	result.AdditionalContexts = acc.Contexts()
	result.MergedPath = mergedPath
	log.Ctx(ctx).Info().
		Int("converted", result.Converted).
		Int("failed", result.Failed).
		Str("merged", mergedPath).
		Dur("elapsed", s.Clock().Sub(started)).
		Msg("batch completed")
	return result, nil
}

func (s Service) convertOne(ctx context.Context, assembler core.Assembler, acc *types.Accumulator, schemaPath string, outputPath string, req BatchRequest) error {
	schema, err := s.Schemas.LoadSchema(schemaPath)
	if err != nil {
		return err
	}
	document, _, err := assembler.Convert(ctx, schema, req.Namespace, req.NamespaceURI, acc)
	if err != nil {
		return err
	}
	return s.Contexts.WriteContext(outputPath, document)
}

func discoverSchemas(dir string, mergedName string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read input directory").
			WithCause(err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == mergedName {
			continue
		}
		if shared.IsSchemaFile(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
