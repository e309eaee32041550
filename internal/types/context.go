package types

import (
	"bytes"
	"encoding/json"
)

// ContextDocument is a top-level linked-data context: an ordered list
// of entries under the "@context" key. An entry is either a context URI
// or filename (string) or an inline *LdFragment.
type ContextDocument struct {
	entries []any
}

func NewContextDocument() *ContextDocument {
	return &ContextDocument{}
}

func (d *ContextDocument) Append(entry any) {
	d.entries = append(d.entries, entry)
}

func (d *ContextDocument) Entries() []any {
	return append([]any(nil), d.entries...)
}

func (d *ContextDocument) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"@context":`)
	if len(d.entries) == 0 {
		buf.WriteString("[]}")
		return buf.Bytes(), nil
	}
	entries, err := json.Marshal(d.entries)
	if err != nil {
		return nil, err
	}
	buf.Write(entries)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
