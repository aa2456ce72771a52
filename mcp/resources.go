package mcp

import "encoding/json"

// RegisterDefaultResources adds all built-in RTF resources to the server.
func RegisterDefaultResources(s *Server) {
	s.AddResource(Resource{
		URI:         "rtf://layouts",
		Name:        "Page Layout Presets",
		Description: "Available page-layout presets with paper dimensions and margins in twips.",
		MIMEType:    "application/json",
		Handler:     handleLayoutsResource,
	})

	s.AddResource(Resource{
		URI:         "rtf://template-schema",
		Name:        "RTF Template Schema",
		Description: "Reference for the JSON/YAML document template accepted by create_rtf.",
		MIMEType:    "text/markdown",
		Handler:     handleSchemaResource,
	})
}

func handleLayoutsResource(uri string) ([]ResourceContent, error) {
	jsonBytes, err := json.MarshalIndent(layoutTable(), "", "  ")
	if err != nil {
		return nil, err
	}
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "application/json",
		Text:     string(jsonBytes),
	}}, nil
}

const templateSchemaDoc = `# RTF document template

Top-level fields:

- title, author: document metadata strings
- pageSize: A4 (default), A5, B5, Letter, Legal, Royal, Digest
- margin: {top, right, bottom, left} as measure strings ("2cm", "1in", "1134")
- codepage: Windows codepage number (1250-1257) for single-byte escapes
- language: language code for the document default, e.g. 1033
- paragraphs: array of paragraph objects

Paragraph:

- style: "normal" (default), "heading" or "default"
- text: shorthand for a single unformatted run
- runs: array of run objects (takes precedence over text)

Run:

- text: the run's text
- bold, italic, underline, smallCaps, sub, super: formatting flags
- fontSize: size in half-points (24 = 12pt)
- note: {text, anchor} footnote anchored after this run; omit anchor
  for automatic numbering
`

func handleSchemaResource(uri string) ([]ResourceContent, error) {
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "text/markdown",
		Text:     templateSchemaDoc,
	}}, nil
}
