// Package shared provides common utility functions used across multiple
// packages in the schema-context codebase.
package shared

import (
	"path/filepath"
	"strings"
)

// schemaExtensions are the file extensions the batch driver treats as
// schema documents.
var schemaExtensions = map[string]struct{}{
	".json": {},
	".yaml": {},
	".yml":  {},
}

// IsSchemaFile reports whether name looks like a schema document the
// converter can load. Already-produced context files are excluded so a
// batch run can safely re-scan its own output directory.
func IsSchemaFile(name string) bool {
	if strings.HasSuffix(name, ".context.jsonld") {
		return false
	}
	_, ok := schemaExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// ContextFileName derives the output filename for a schema document:
// the schema extension is replaced by ".context.jsonld".
func ContextFileName(schemaName string) string {
	base := filepath.Base(schemaName)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".context.jsonld"
}

// IsYAMLFile reports whether the path carries a YAML extension.
func IsYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
