package analysis

import "github.com/invopop/jsonschema"

// Schema describes the DocumentAnalysis JSON document.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	s := r.Reflect(&DocumentAnalysis{})
	s.Title = "DocumentAnalysis"
	s.Description = "Emotional tone of a document at document, paragraph and sentence level."
	return s
}
