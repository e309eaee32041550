// Package types defines the document model shared by the converter core,
// the application layer, and the file adapters: the ordered schema tree,
// the linked-data fragment under construction, and the run-wide
// accumulator state.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type NodeKind string

const (
	NodeObject NodeKind = "object"
	NodeArray  NodeKind = "array"
	NodeScalar NodeKind = "scalar"
)

// Pair is one member of an object node.
type Pair struct {
	Key   string
	Value *SchemaNode
}

// SchemaNode is one node of a parsed schema document. It is a closed
// union over the three shapes the interpreter branches on: an ordered
// key/value object, an array, or a scalar (string, number, boolean,
// null). Object members are kept as an ordered pair list, so a
// duplicate member name in the source survives parsing and reaches the
// interpreter, where redefinition is diagnosed. Nodes are immutable
// once a document has been loaded.
type SchemaNode struct {
	kind   NodeKind
	pairs  []Pair
	items  []*SchemaNode
	scalar any
}

func NewScalarNode(value any) *SchemaNode {
	return &SchemaNode{kind: NodeScalar, scalar: value}
}

func NewArrayNode(items ...*SchemaNode) *SchemaNode {
	return &SchemaNode{kind: NodeArray, items: items}
}

func NewObjectNode() *SchemaNode {
	return &SchemaNode{kind: NodeObject}
}

// Add appends a key/child pair to an object node, preserving insertion
// order. Duplicate member names are appended as-is; conflict handling
// belongs to the consumer, not the parser.
func (n *SchemaNode) Add(key string, child *SchemaNode) *SchemaNode {
	n.pairs = append(n.pairs, Pair{Key: key, Value: child})
	return n
}

func (n *SchemaNode) Kind() NodeKind { return n.kind }

func (n *SchemaNode) IsObject() bool { return n != nil && n.kind == NodeObject }

func (n *SchemaNode) IsArray() bool { return n != nil && n.kind == NodeArray }

func (n *SchemaNode) IsScalar() bool { return n != nil && n.kind == NodeScalar }

// Pairs returns the members of an object node in document order,
// duplicates included.
func (n *SchemaNode) Pairs() []Pair {
	return append([]Pair(nil), n.pairs...)
}

// Keys returns the member names of an object node in document order,
// duplicates included.
func (n *SchemaNode) Keys() []string {
	keys := make([]string, 0, len(n.pairs))
	for _, pair := range n.pairs {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Get returns the first member with the given name.
func (n *SchemaNode) Get(key string) (*SchemaNode, bool) {
	for _, pair := range n.pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return nil, false
}

func (n *SchemaNode) Items() []*SchemaNode {
	return append([]*SchemaNode(nil), n.items...)
}

func (n *SchemaNode) Scalar() any { return n.scalar }

// StringValue returns the scalar string of the node, and whether the
// node actually holds one.
func (n *SchemaNode) StringValue() (string, bool) {
	if n == nil || n.kind != NodeScalar {
		return "", false
	}
	s, ok := n.scalar.(string)
	return s, ok
}

// NodeFromJSON parses a JSON document into a SchemaNode tree. Member
// order is preserved, which encoding/json map decoding would lose, by
// walking the token stream directly.
func NodeFromJSON(data []byte) (*SchemaNode, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	node, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing content after document")
	}
	return node, nil
}

func decodeValue(dec *json.Decoder) (*SchemaNode, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return NewScalarNode(f), nil
	default:
		// string, bool, or nil
		return NewScalarNode(tok), nil
	}
}

func decodeObject(dec *json.Decoder) (*SchemaNode, error) {
	node := NewObjectNode()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", tok)
		}
		child, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		node.Add(key, child)
	}
	// consume closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return node, nil
}

func decodeArray(dec *json.Decoder) (*SchemaNode, error) {
	var items []*SchemaNode
	for dec.More() {
		child, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, child)
	}
	// consume closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return NewArrayNode(items...), nil
}

// NodeFromYAML parses a YAML document into a SchemaNode tree. yaml.Node
// keeps mapping keys in document order, so YAML-authored schemas get
// the same ordering guarantees as JSON ones.
func NodeFromYAML(data []byte) (*SchemaNode, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("empty yaml document")
	}
	return nodeFromYAMLNode(root.Content[0])
}

func nodeFromYAMLNode(n *yaml.Node) (*SchemaNode, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		node := NewObjectNode()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			child, err := nodeFromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			node.Add(key, child)
		}
		return node, nil
	case yaml.SequenceNode:
		items := make([]*SchemaNode, 0, len(n.Content))
		for _, c := range n.Content {
			child, err := nodeFromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, child)
		}
		return NewArrayNode(items...), nil
	case yaml.ScalarNode:
		var value any
		if err := n.Decode(&value); err != nil {
			return nil, err
		}
		// normalize integers so scalar comparison matches the JSON path
		if i, ok := value.(int); ok {
			value = float64(i)
		}
		return NewScalarNode(value), nil
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d at line %d", n.Kind, n.Line)
	}
}
