package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"schema-context/internal/types"
)

type ContextFileAdapter struct{}

func NewContextFileAdapter() ContextFileAdapter {
	return ContextFileAdapter{}
}

// WriteContext serializes doc as indented JSON to path, creating the
// parent directory when needed.
func (a ContextFileAdapter) WriteContext(path string, doc *types.ContextDocument) error {
	return a.write(path, doc)
}

// WriteMergedContext writes the batch-level context document whose
// @context array lists the produced context filenames and any
// additional context URIs, in the order given.
func (a ContextFileAdapter) WriteMergedContext(path string, entries []string) error {
	doc := types.NewContextDocument()
	for _, entry := range entries {
		doc.Append(entry)
	}
	return a.write(path, doc)
}

func (a ContextFileAdapter) write(path string, doc *types.ContextDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize context document").
			WithCause(err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create output directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write context file").
			WithCause(err)
	}
	return nil
}
