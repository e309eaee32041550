// Package ports declares the boundary interfaces between the
// application layer and its file adapters.
package ports

import "schema-context/internal/types"

type SchemaPort interface {
	LoadSchema(path string) (*types.SchemaNode, error)
}
