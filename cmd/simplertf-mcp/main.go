// Command simplertf-mcp is an MCP (Model Context Protocol) server that
// exposes RTF document generation to AI assistants.
//
// # Installation
//
//	go install github.com/xavi-mat/simplertf/cmd/simplertf-mcp@latest
//
// # Configuration for Claude Desktop
//
// Add to ~/.config/claude/claude_desktop_config.json:
//
//	{
//	  "mcpServers": {
//	    "simplertf": {
//	      "command": "simplertf-mcp"
//	    }
//	  }
//	}
//
// # Available Tools
//
//   - create_rtf: Create RTF documents from JSON templates
//   - convert_markdown: Convert Markdown text to RTF
//   - list_layouts: List page-layout presets
//
// # Available Resources
//
//   - rtf://layouts : Page-layout presets with dimensions
//   - rtf://template-schema : Reference for the document template format
package main

import (
	"fmt"
	"os"

	"github.com/xavi-mat/simplertf/mcp"
)

func main() {
	server := mcp.NewServer()

	mcp.RegisterDefaultTools(server)
	mcp.RegisterDefaultResources(server)

	if err := server.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "simplertf-mcp: %v\n", err)
		os.Exit(1)
	}
}
