// Package adapters implements the file-level ports: loading schema
// documents and writing the generated context documents.
package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"schema-context/internal/shared"
	"schema-context/internal/types"
)

type SchemaFileAdapter struct{}

func NewSchemaFileAdapter() SchemaFileAdapter {
	return SchemaFileAdapter{}
}

// LoadSchema reads one schema document. YAML files go through the
// order-preserving yaml.Node path, everything else is parsed as JSON.
// The document root must be an object.
func (a SchemaFileAdapter) LoadSchema(path string) (*types.SchemaNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("schema file not found").
			WithCause(err)
	}
	var node *types.SchemaNode
	if shared.IsYAMLFile(path) {
		node, err = types.NodeFromYAML(data)
	} else {
		node, err = types.NodeFromJSON(data)
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse schema document").
			WithCause(err)
	}
	if !node.IsObject() {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema root must be an object")
	}
	return node, nil
}
