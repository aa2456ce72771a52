package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	simplertf "github.com/xavi-mat/simplertf"
	"github.com/xavi-mat/simplertf/doctpl"
	"github.com/xavi-mat/simplertf/mdconv"
)

// RegisterDefaultTools adds all built-in RTF tools to the server.
func RegisterDefaultTools(s *Server) {
	s.AddTool(createRTFTool())
	s.AddTool(convertMarkdownTool())
	s.AddTool(listLayoutsTool())
}

func createRTFTool() Tool {
	return Tool{
		Name:        "create_rtf",
		Description: "Create an RTF document from a JSON template. The template supports page-size presets, margins, styled paragraphs, formatted text runs and footnotes. Returns the RTF text, or saves it when outputPath is given.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"template": map[string]interface{}{
					"type":        "object",
					"description": "JSON document template with title, pageSize and paragraphs",
				},
				"outputPath": map[string]interface{}{
					"type":        "string",
					"description": "Optional file path to save the RTF. If omitted, returns the text.",
				},
			},
			"required": []string{"template"},
		},
		Handler: handleCreateRTF,
	}
}

func handleCreateRTF(args map[string]interface{}) (ToolResult, error) {
	templateData, ok := args["template"]
	if !ok {
		return ToolResult{}, fmt.Errorf("missing 'template' argument")
	}

	jsonBytes, err := json.Marshal(templateData)
	if err != nil {
		return ToolResult{}, fmt.Errorf("encoding template: %w", err)
	}

	var buf bytes.Buffer
	if err := doctpl.Render(&buf, jsonBytes); err != nil {
		return ToolResult{}, fmt.Errorf("rendering RTF: %w", err)
	}

	return deliver(args, buf.Bytes())
}

func convertMarkdownTool() Tool {
	return Tool{
		Name:        "convert_markdown",
		Description: "Convert Markdown text to an RTF document. Supports headings, emphasis, lists, blockquotes, code blocks and footnotes ([^1]).",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"markdown": map[string]interface{}{
					"type":        "string",
					"description": "Markdown source text",
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Document title for the RTF info block",
				},
				"author": map[string]interface{}{
					"type":        "string",
					"description": "Document author for the RTF info block",
				},
				"pageSize": map[string]interface{}{
					"type":        "string",
					"description": "Layout preset: A4, A5, B5, Letter, Legal, Royal, Digest",
				},
				"outputPath": map[string]interface{}{
					"type":        "string",
					"description": "Optional file path to save the RTF. If omitted, returns the text.",
				},
			},
			"required": []string{"markdown"},
		},
		Handler: handleConvertMarkdown,
	}
}

func handleConvertMarkdown(args map[string]interface{}) (ToolResult, error) {
	source, ok := args["markdown"].(string)
	if !ok {
		return ToolResult{}, fmt.Errorf("missing 'markdown' argument")
	}

	var opts []simplertf.Option
	if title, ok := args["title"].(string); ok && title != "" {
		opts = append(opts, simplertf.WithTitle(title))
	}
	if author, ok := args["author"].(string); ok && author != "" {
		opts = append(opts, simplertf.WithAuthor(author))
	}
	if preset, ok := args["pageSize"].(string); ok && preset != "" {
		if _, err := simplertf.ResolvePreset(preset); err != nil {
			return ToolResult{}, err
		}
		opts = append(opts, simplertf.WithLayout(preset))
	}

	var buf bytes.Buffer
	if err := mdconv.Convert(&buf, []byte(source), opts...); err != nil {
		return ToolResult{}, err
	}

	return deliver(args, buf.Bytes())
}

func listLayoutsTool() Tool {
	return Tool{
		Name:        "list_layouts",
		Description: "List the available page-layout presets with their paper dimensions and margins in twips.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
		Handler: handleListLayouts,
	}
}

func handleListLayouts(map[string]interface{}) (ToolResult, error) {
	jsonBytes, err := json.MarshalIndent(layoutTable(), "", "  ")
	if err != nil {
		return ToolResult{}, err
	}
	return ToolResult{
		Content: []ContentBlock{{Type: "text", Text: string(jsonBytes)}},
	}, nil
}

// deliver returns the RTF text inline, or writes it to outputPath when the
// argument is present. RTF is 7-bit text, so no binary encoding is needed.
func deliver(args map[string]interface{}, data []byte) (ToolResult, error) {
	if outputPath, ok := args["outputPath"].(string); ok && outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return ToolResult{}, fmt.Errorf("writing file: %w", err)
		}
		return ToolResult{
			Content: []ContentBlock{{
				Type: "text",
				Text: fmt.Sprintf("RTF created successfully: %s (%d bytes)", outputPath, len(data)),
			}},
		}, nil
	}

	return ToolResult{
		Content: []ContentBlock{{
			Type:     "text",
			Text:     string(data),
			MIMEType: "application/rtf",
		}},
	}, nil
}

func layoutTable() []map[string]interface{} {
	presets := make([]map[string]interface{}, 0)
	for _, name := range simplertf.PresetNames() {
		l, err := simplertf.ResolvePreset(name)
		if err != nil {
			continue
		}
		presets = append(presets, map[string]interface{}{
			"name":         name,
			"pageWidth":    l.PageWidth,
			"pageHeight":   l.PageHeight,
			"marginTop":    l.MarginTop,
			"marginBottom": l.MarginBottom,
			"marginLeft":   l.MarginLeft,
			"marginRight":  l.MarginRight,
		})
	}
	return presets
}
