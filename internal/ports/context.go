package ports

import "schema-context/internal/types"

type ContextWriterPort interface {
	WriteContext(path string, doc *types.ContextDocument) error
	WriteMergedContext(path string, entries []string) error
}
