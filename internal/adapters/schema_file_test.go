package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSchemaJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sample.json", `{"type": "object", "properties": {"name": {"type": "string"}}}`)
	node, err := NewSchemaFileAdapter().LoadSchema(path)
	require.NoError(t, err)
	require.True(t, node.IsObject())
	if diff := cmp.Diff([]string{"type", "properties"}, node.Keys()); diff != "" {
		t.Fatalf("unexpected key order (-want +got):\n%s", diff)
	}
}

func TestLoadSchemaYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sample.yaml", "type: object\nproperties:\n  name:\n    type: string\n")
	node, err := NewSchemaFileAdapter().LoadSchema(path)
	require.NoError(t, err)
	require.True(t, node.IsObject())
	props, ok := node.Get("properties")
	require.True(t, ok)
	assert.True(t, props.IsObject())
}

func TestLoadSchemaMissingFile(t *testing.T) {
	_, err := NewSchemaFileAdapter().LoadSchema(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestLoadSchemaMalformedInput(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.json", `{"type": `)
	_, err := NewSchemaFileAdapter().LoadSchema(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestLoadSchemaRejectsNonObjectRoot(t *testing.T) {
	path := writeFile(t, t.TempDir(), "array.json", `[1, 2, 3]`)
	_, err := NewSchemaFileAdapter().LoadSchema(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
