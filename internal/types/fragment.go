package types

import (
	"bytes"
	"encoding/json"
)

// LdFragment is a linked-data context object under construction. Keys
// map to a string, a nested *LdFragment, or a []string, and marshal in
// insertion order so converted documents are deterministic.
type LdFragment struct {
	keys   []string
	values map[string]any
}

func NewFragment() *LdFragment {
	return &LdFragment{values: map[string]any{}}
}

// Set writes a key. Callers that must not overwrite check Has first;
// Set itself keeps the key's original position on re-assignment.
func (f *LdFragment) Set(key string, value any) {
	if _, exists := f.values[key]; !exists {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

func (f *LdFragment) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *LdFragment) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

func (f *LdFragment) Len() int { return len(f.keys) }

func (f *LdFragment) Keys() []string {
	return append([]string(nil), f.keys...)
}

func (f *LdFragment) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(f.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
