package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-context/internal/types"
)

func writeSchema(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConvertWritesContextDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeSchema(t, dir, "person.json", `{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer"}
		}
	}`)

	result, err := NewService().Convert(context.Background(), ConvertRequest{
		SchemaPath:   schemaPath,
		Namespace:    "ex",
		NamespaceURI: "https://example.org/ns#",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "person.context.jsonld"), result.OutputPath)
	assert.Empty(t, result.Diagnostics)
	assert.Empty(t, result.AdditionalContexts)

	data, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	expected := `{
  "@context": [
    {
      "name": {
        "@id": "ex:name"
      },
      "age": {
        "@type": "xsd:integer",
        "@id": "ex:age"
      },
      "ex": "https://example.org/ns#"
    }
  ]
}
`
	if diff := cmp.Diff(expected, string(data)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestConvertHonorsExplicitOutputPath(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeSchema(t, dir, "thing.json", `{"type": "object"}`)
	outputPath := filepath.Join(dir, "out", "thing.jsonld")

	result, err := NewService().Convert(context.Background(), ConvertRequest{
		SchemaPath:   schemaPath,
		Namespace:    "ex",
		NamespaceURI: "https://example.org/ns#",
		OutputPath:   outputPath,
	})
	require.NoError(t, err)
	assert.Equal(t, outputPath, result.OutputPath)
	_, err = os.Stat(outputPath)
	assert.NoError(t, err)
}

func TestConvertSurfacesDiagnostics(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeSchema(t, dir, "odd.json", `{"type": "integer", "format": "uri", "wibble": 1}`)

	result, err := NewService().Convert(context.Background(), ConvertRequest{
		SchemaPath:   schemaPath,
		Namespace:    "ex",
		NamespaceURI: "https://example.org/ns#",
	})
	require.NoError(t, err)
	kinds := make([]types.DiagnosticKind, 0, len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		kinds = append(kinds, d.Kind)
	}
	assert.Contains(t, kinds, types.DiagKeyConflict)
	assert.Contains(t, kinds, types.DiagUnsupportedKeyword)
}

func TestConvertValidatesRequest(t *testing.T) {
	tests := []struct {
		name string
		req  ConvertRequest
	}{
		{"missing schema path", ConvertRequest{Namespace: "ex", NamespaceURI: "https://example.org/ns#"}},
		{"missing namespace", ConvertRequest{SchemaPath: "x.json", NamespaceURI: "https://example.org/ns#"}},
		{"missing nsuri", ConvertRequest{SchemaPath: "x.json", Namespace: "ex"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService().Convert(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}

func TestConvertMissingSchemaFile(t *testing.T) {
	_, err := NewService().Convert(context.Background(), ConvertRequest{
		SchemaPath:   filepath.Join(t.TempDir(), "absent.json"),
		Namespace:    "ex",
		NamespaceURI: "https://example.org/ns#",
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
