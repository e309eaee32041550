package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeFromJSONPreservesMemberOrder(t *testing.T) {
	node, err := NodeFromJSON([]byte(`{"zeta": 1, "alpha": 2, "mike": 3}`))
	require.NoError(t, err)
	require.True(t, node.IsObject())
	if diff := cmp.Diff([]string{"zeta", "alpha", "mike"}, node.Keys()); diff != "" {
		t.Fatalf("unexpected key order (-want +got):\n%s", diff)
	}
}

func TestNodeFromJSONShapes(t *testing.T) {
	node, err := NodeFromJSON([]byte(`{"s": "text", "n": 3.5, "b": true, "z": null, "a": [1, 2], "o": {"k": "v"}}`))
	require.NoError(t, err)

	s, _ := node.Get("s")
	value, ok := s.StringValue()
	require.True(t, ok)
	assert.Equal(t, "text", value)

	n, _ := node.Get("n")
	require.True(t, n.IsScalar())
	assert.Equal(t, 3.5, n.Scalar())

	b, _ := node.Get("b")
	assert.Equal(t, true, b.Scalar())

	z, _ := node.Get("z")
	assert.Nil(t, z.Scalar())

	a, _ := node.Get("a")
	require.True(t, a.IsArray())
	assert.Len(t, a.Items(), 2)

	o, _ := node.Get("o")
	require.True(t, o.IsObject())
	k, ok := o.Get("k")
	require.True(t, ok)
	value, _ = k.StringValue()
	assert.Equal(t, "v", value)
}

func TestNodeFromJSONRejectsMalformedInput(t *testing.T) {
	_, err := NodeFromJSON([]byte(`{"open": `))
	assert.Error(t, err)

	_, err = NodeFromJSON([]byte(`{} trailing`))
	assert.Error(t, err)
}

func TestNodeFromJSONPreservesDuplicateMembers(t *testing.T) {
	node, err := NodeFromJSON([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"a", "b", "a"}, node.Keys()); diff != "" {
		t.Fatalf("unexpected key order (-want +got):\n%s", diff)
	}
	// Get resolves to the first occurrence
	a, ok := node.Get("a")
	require.True(t, ok)
	assert.Equal(t, float64(1), a.Scalar())

	pairs := node.Pairs()
	require.Len(t, pairs, 3)
	assert.Equal(t, "a", pairs[2].Key)
	assert.Equal(t, float64(3), pairs[2].Value.Scalar())
}

func TestNodeFromYAMLPreservesMemberOrder(t *testing.T) {
	doc := []byte("zeta: 1\nalpha: two\nmike:\n  - a\n  - b\n")
	node, err := NodeFromYAML(doc)
	require.NoError(t, err)
	require.True(t, node.IsObject())
	if diff := cmp.Diff([]string{"zeta", "alpha", "mike"}, node.Keys()); diff != "" {
		t.Fatalf("unexpected key order (-want +got):\n%s", diff)
	}

	zeta, _ := node.Get("zeta")
	assert.Equal(t, float64(1), zeta.Scalar())

	mike, _ := node.Get("mike")
	require.True(t, mike.IsArray())
	assert.Len(t, mike.Items(), 2)
}

func TestNodeFromYAMLRejectsEmptyDocument(t *testing.T) {
	_, err := NodeFromYAML([]byte(""))
	assert.Error(t, err)
}
