// Package core implements the schema-to-context transformation: a
// keyword interpreter that walks one schema node at a time, and a
// document assembler that wraps the interpreted root fragment into a
// complete context document.
package core

// Reserved linked-data context keys.
const (
	KeyContext   = "@context"
	KeyID        = "@id"
	KeyType      = "@type"
	KeyContainer = "@container"

	// ValueList marks array-typed properties as ordered lists.
	ValueList = "@list"

	// ValueID marks a property whose values are identifiers (IRIs).
	ValueID = "@id"
)

// XSD datatype terms emitted for schema type and format declarations.
// The xsd prefix is expected to resolve via a standard context supplied
// alongside the generated documents.
const (
	XSDBoolean  = "xsd:boolean"
	XSDInteger  = "xsd:integer"
	XSDDouble   = "xsd:double"
	XSDDateTime = "xsd:dateTime"
)
