package core

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"schema-context/internal/types"
)

// handlerFunc interprets one keyword's value against the current
// fragment. Handlers report through the interpreter's sink and never
// fail; the transform is best-effort by design.
type handlerFunc func(i *Interpreter, ctx context.Context, keyword string, value *types.SchemaNode, frag *types.LdFragment)

// inertKeywords carry no linked-data semantics. They are dispatched to
// an identity handler so their presence is recognized, not diagnosed.
var inertKeywords = []string{
	"multipleOf", "maximum", "exclusiveMaximum", "minimum", "exclusiveMinimum",
	"maxLength", "minLength", "pattern",
	"maxItems", "minItems", "uniqueItems",
	"maxProperties", "minProperties",
	"required", "dependencies", "enum", "not",
	"title", "description", "default",
	"$schema", "id",
}

// handlers is the dispatch table: the single source of truth for which
// schema keywords are meaningful to the conversion. Anything absent is
// an unsupported keyword. The table is populated in init because the
// method expressions reach back into Process, which reads the table.
var handlers = map[string]handlerFunc{}

func init() {
	for keyword, handler := range map[string]handlerFunc{
		"items":                (*Interpreter).handleItems,
		"additionalItems":      (*Interpreter).handleAdditional,
		"properties":           (*Interpreter).handleProperties,
		"additionalProperties": (*Interpreter).handleAdditional,
		"type":                 (*Interpreter).handleType,
		"allOf":                (*Interpreter).handleComposition,
		"anyOf":                (*Interpreter).handleComposition,
		"oneOf":                (*Interpreter).handleComposition,
		"$ref":                 (*Interpreter).handleRef,
		"format":               (*Interpreter).handleFormat,
	} {
		handlers[keyword] = handler
	}
	for _, keyword := range inertKeywords {
		handlers[keyword] = (*Interpreter).handleInert
	}
}

// typesByName maps schema type names to their XSD terms. Types absent
// here either need no linked-data type (string, object, null) or have
// dedicated handling (array).
var typesByName = map[string]string{
	"boolean": XSDBoolean,
	"integer": XSDInteger,
	"number":  XSDDouble,
}

// formatsByName maps schema format names to their XSD terms or to @id
// for identifier-valued properties.
var formatsByName = map[string]string{
	"date-time": XSDDateTime,
	"uri":       ValueID,
}

// noLdTypes and noLdFormats are recognized values with no linked-data
// equivalent; they pass without diagnostic.
var noLdTypes = map[string]struct{}{
	"null":   {},
	"object": {},
	"string": {},
}

var noLdFormats = map[string]struct{}{
	"email":    {},
	"hostname": {},
	"ipv4":     {},
	"ipv6":     {},
}

// Interpreter applies the keyword dispatch table to schema nodes,
// accumulating the linked-data view of one document. Additional context
// URIs discovered through $ref land in the shared accumulator.
type Interpreter struct {
	namespace string
	acc       *types.Accumulator
	sink      *DiagnosticSink
}

func NewInterpreter(namespace string, acc *types.Accumulator, sink *DiagnosticSink) *Interpreter {
	return &Interpreter{namespace: namespace, acc: acc, sink: sink}
}

// Process interprets every keyword of node against target. A nil
// target starts a fresh fragment; either way the active fragment is
// returned. The fragment a caller passes in is threaded explicitly
// through recursion, so nested calls never disturb the caller's view.
func (i *Interpreter) Process(ctx context.Context, node *types.SchemaNode, target *types.LdFragment) *types.LdFragment {
	frag := target
	if frag == nil {
		frag = types.NewFragment()
	}
	if !node.IsObject() {
		kind := "nil"
		if node != nil {
			kind = string(node.Kind())
		}
		i.sink.Report(ctx, types.DiagUnsupportedFeature, "",
			fmt.Sprintf("schema node is %s, expected an object", kind))
		return frag
	}
	for _, pair := range node.Pairs() {
		handler, ok := handlers[pair.Key]
		if !ok {
			i.sink.Report(ctx, types.DiagUnsupportedKeyword, pair.Key, "keyword not supported")
			continue
		}
		handler(i, ctx, pair.Key, pair.Value, frag)
	}
	return frag
}

func (i *Interpreter) handleInert(_ context.Context, _ string, _ *types.SchemaNode, _ *types.LdFragment) {
}

// handleItems merges a single item schema into the current fragment.
// Tuple-form items (an array of schemas) are outside the supported
// subset.
func (i *Interpreter) handleItems(ctx context.Context, keyword string, value *types.SchemaNode, frag *types.LdFragment) {
	switch {
	case value.IsObject():
		i.Process(ctx, value, frag)
	case value.IsArray():
		i.sink.Report(ctx, types.DiagUnsupportedFeature, keyword,
			"array-form items (per-index tuple typing) is not supported")
	}
}

// handleAdditional covers additionalItems and additionalProperties: a
// schema value merges into the current fragment, the boolean form is
// deliberately a silent no-op.
func (i *Interpreter) handleAdditional(ctx context.Context, _ string, value *types.SchemaNode, frag *types.LdFragment) {
	if value.IsObject() {
		i.Process(ctx, value, frag)
	}
}

// handleProperties interprets each property sub-schema into its own
// nested fragment and inserts it under the property name with a
// namespaced @id. A property whose schema is a bare $ref records the
// reference target instead of recursing. A property name already
// present in the fragment — a duplicate member in this block, or a
// redefinition arriving through a composition keyword — is a conflict
// and the first definition wins.
func (i *Interpreter) handleProperties(ctx context.Context, keyword string, value *types.SchemaNode, frag *types.LdFragment) {
	if !value.IsObject() {
		i.sink.Report(ctx, types.DiagUnsupportedFeature, keyword,
			fmt.Sprintf("properties value is %s, expected an object", value.Kind()))
		return
	}
	for _, pair := range value.Pairs() {
		name, sub := pair.Key, pair.Value
		if frag.Has(name) {
			existing, _ := frag.Get(name)
			i.sink.Report(ctx, types.DiagKeyConflict, keyword,
				fmt.Sprintf("property %q already defined as %v; keeping the first definition", name, describeValue(existing)))
			continue
		}
		nested := types.NewFragment()
		if ref, ok := refTarget(sub); ok {
			i.recordRef(ctx, ref)
		} else {
			i.Process(ctx, sub, nested)
		}
		nested.Set(KeyID, i.namespace+":"+name)
		frag.Set(name, nested)
	}
}

// handleType maps a single schema type name onto the fragment. Arrays
// of type names are outside the supported subset.
func (i *Interpreter) handleType(ctx context.Context, keyword string, value *types.SchemaNode, frag *types.LdFragment) {
	if value.IsArray() {
		i.sink.Report(ctx, types.DiagUnsupportedFeature, keyword,
			"multi-valued type is not supported")
		return
	}
	name, ok := value.StringValue()
	if !ok {
		i.sink.Report(ctx, types.DiagUnrecognizedValue, keyword,
			fmt.Sprintf("type value %v is not a string", value.Scalar()))
		return
	}
	if name == "array" {
		i.setOnce(ctx, frag, KeyContainer, ValueList, keyword)
		return
	}
	if term, mapped := typesByName[name]; mapped {
		i.setOnce(ctx, frag, KeyType, term, keyword)
		return
	}
	if _, recognized := noLdTypes[name]; recognized {
		return
	}
	i.sink.Report(ctx, types.DiagUnrecognizedValue, keyword,
		fmt.Sprintf("unrecognized type %q", name))
}

// handleComposition merges every element of an allOf/anyOf/oneOf array
// into the current fragment in array order. The subset models no
// distinction between the three combinators.
func (i *Interpreter) handleComposition(ctx context.Context, keyword string, value *types.SchemaNode, frag *types.LdFragment) {
	if !value.IsArray() {
		i.sink.Report(ctx, types.DiagUnsupportedFeature, keyword,
			fmt.Sprintf("composition value is %s, expected an array", value.Kind()))
		return
	}
	for _, element := range value.Items() {
		if !element.IsObject() {
			i.sink.Report(ctx, types.DiagUnsupportedFeature, keyword,
				fmt.Sprintf("composition element is %s, expected an object", element.Kind()))
			continue
		}
		i.Process(ctx, element, frag)
	}
}

// handleRef records the referenced document's base URI for the merged
// context. Dereferencing the target is out of scope, so the current
// fragment is left untouched.
func (i *Interpreter) handleRef(ctx context.Context, keyword string, value *types.SchemaNode, _ *types.LdFragment) {
	ref, ok := value.StringValue()
	if !ok {
		i.sink.Report(ctx, types.DiagUnrecognizedValue, keyword,
			fmt.Sprintf("$ref value %v is not a string", value.Scalar()))
		return
	}
	i.recordRef(ctx, ref)
}

func (i *Interpreter) recordRef(ctx context.Context, ref string) {
	parsed, err := url.Parse(ref)
	if err != nil {
		i.sink.Report(ctx, types.DiagUnrecognizedValue, "$ref",
			fmt.Sprintf("unparseable $ref %q", ref))
		return
	}
	parsed.Fragment = ""
	parsed.RawFragment = ""
	parsed.RawQuery = ""
	base := parsed.String()
	if base == "" {
		return
	}
	if i.acc.AddContext(base) {
		log.Ctx(ctx).Debug().Str("context", base).Msg("additional context recorded")
	}
}

// handleFormat maps a schema format onto @type when no type has claimed
// the slot yet; an existing @type wins and the collision is diagnosed.
func (i *Interpreter) handleFormat(ctx context.Context, keyword string, value *types.SchemaNode, frag *types.LdFragment) {
	name, ok := value.StringValue()
	if !ok {
		i.sink.Report(ctx, types.DiagUnrecognizedValue, keyword,
			fmt.Sprintf("format value %v is not a string", value.Scalar()))
		return
	}
	if existing, set := frag.Get(KeyType); set {
		i.sink.Report(ctx, types.DiagKeyConflict, keyword,
			fmt.Sprintf("format %q conflicts with @type %v; keeping the existing value", name, describeValue(existing)))
		return
	}
	if term, mapped := formatsByName[name]; mapped {
		frag.Set(KeyType, term)
		return
	}
	if _, recognized := noLdFormats[name]; recognized {
		return
	}
	i.sink.Report(ctx, types.DiagUnrecognizedValue, keyword,
		fmt.Sprintf("unrecognized format %q", name))
}

// setOnce writes key only when unset; a second writer is a conflict and
// the first value is retained.
func (i *Interpreter) setOnce(ctx context.Context, frag *types.LdFragment, key string, value string, keyword string) {
	if existing, set := frag.Get(key); set {
		i.sink.Report(ctx, types.DiagKeyConflict, keyword,
			fmt.Sprintf("%s already set to %v, ignoring %q", key, describeValue(existing), value))
		return
	}
	frag.Set(key, value)
}

// refTarget reports whether sub is a reference-only schema and returns
// its target.
func refTarget(sub *types.SchemaNode) (string, bool) {
	if !sub.IsObject() {
		return "", false
	}
	child, ok := sub.Get("$ref")
	if !ok {
		return "", false
	}
	return child.StringValue()
}

func describeValue(v any) string {
	if frag, ok := v.(*types.LdFragment); ok {
		data, err := frag.MarshalJSON()
		if err == nil {
			return string(data)
		}
	}
	return fmt.Sprintf("%v", v)
}
