package app

import "schema-context/internal/types"

type ConvertRequest struct {
	SchemaPath   string
	Namespace    string
	NamespaceURI string
	OutputPath   string
}

type ConvertResult struct {
	OutputPath         string
	Diagnostics        []types.Diagnostic
	AdditionalContexts []string
}

type BatchRequest struct {
	InputDir     string
	OutputDir    string
	Namespace    string
	NamespaceURI string

	// ExtraContexts are appended verbatim to the merged @context array
	// after the produced filenames and discovered context URIs.
	ExtraContexts []string

	// MergedName is the filename of the merged context document,
	// defaulting to context.json.
	MergedName string
}

type BatchResult struct {
	Converted          int
	Failed             int
	Produced           []string
	AdditionalContexts []string
	MergedPath         string
}
