package mcp

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func sendRequest(t *testing.T, s *Server, method string, id int, params interface{}) jsonrpcResponse {
	t.Helper()

	req := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
	}
	if params != nil {
		req["params"] = params
	}

	reqBytes, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	reqBytes = append(reqBytes, '\n')

	var output bytes.Buffer
	s.input = bytes.NewReader(reqBytes)
	s.output = &output

	s.Run()

	var resp jsonrpcResponse
	if err := json.Unmarshal(output.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshaling response %q: %v", output.String(), err)
	}
	return resp
}

func resultMap(t *testing.T, resp jsonrpcResponse) map[string]interface{} {
	t.Helper()
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("result is not a map")
	}
	return result
}

func callTool(t *testing.T, name string, args map[string]interface{}) map[string]interface{} {
	t.Helper()
	s := NewServerWithIO(nil, nil)
	RegisterDefaultTools(s)

	resp := sendRequest(t, s, "tools/call", 1, map[string]interface{}{
		"name":      name,
		"arguments": args,
	})
	return resultMap(t, resp)
}

func firstContentText(t *testing.T, result map[string]interface{}) string {
	t.Helper()
	content, ok := result["content"].([]interface{})
	if !ok || len(content) == 0 {
		t.Fatalf("missing content: %v", result)
	}
	block, ok := content[0].(map[string]interface{})
	if !ok {
		t.Fatalf("content block is not a map")
	}
	text, _ := block["text"].(string)
	return text
}

func TestServerInitialize(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultTools(s)

	resp := sendRequest(t, s, "initialize", 1, map[string]interface{}{
		"protocolVersion": "2024-11-05",
		"capabilities":    map[string]interface{}{},
		"clientInfo":      map[string]interface{}{"name": "test", "version": "1.0"},
	})

	result := resultMap(t, resp)
	if result["protocolVersion"] != "2024-11-05" {
		t.Fatalf("unexpected protocol version: %v", result["protocolVersion"])
	}
	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("missing serverInfo")
	}
	if serverInfo["name"] != "simplertf-mcp" {
		t.Fatalf("unexpected server name: %v", serverInfo["name"])
	}
}

func TestServerToolsList(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultTools(s)

	result := resultMap(t, sendRequest(t, s, "tools/list", 2, nil))

	tools, ok := result["tools"].([]interface{})
	if !ok {
		t.Fatal("tools is not an array")
	}

	toolNames := make(map[string]bool)
	for _, tool := range tools {
		tm, ok := tool.(map[string]interface{})
		if !ok {
			continue
		}
		if name, ok := tm["name"].(string); ok {
			toolNames[name] = true
		}
	}

	for _, name := range []string{"create_rtf", "convert_markdown", "list_layouts"} {
		if !toolNames[name] {
			t.Fatalf("missing tool %q in %v", name, toolNames)
		}
	}
}

func TestCreateRTFTool(t *testing.T) {
	result := callTool(t, "create_rtf", map[string]interface{}{
		"template": map[string]interface{}{
			"title": "Tool Test",
			"paragraphs": []interface{}{
				map[string]interface{}{"style": "heading", "text": "Hello"},
				map[string]interface{}{"text": "Body text."},
			},
		},
	})

	text := firstContentText(t, result)
	if !strings.HasPrefix(text, "{\\rtf1") {
		t.Fatalf("result is not RTF: %q", text)
	}
	if !strings.Contains(text, "{\\title Tool Test}") {
		t.Fatalf("missing title:\n%s", text)
	}
}

func TestCreateRTFToolOutputPath(t *testing.T) {
	path := t.TempDir() + "/tool.rtf"
	result := callTool(t, "create_rtf", map[string]interface{}{
		"template": map[string]interface{}{
			"paragraphs": []interface{}{
				map[string]interface{}{"text": "Saved to disk."},
			},
		},
		"outputPath": path,
	})

	text := firstContentText(t, result)
	if !strings.Contains(text, "created successfully") {
		t.Fatalf("unexpected result text: %q", text)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if !strings.HasPrefix(string(data), "{\\rtf1") {
		t.Fatalf("file is not RTF: %q", data[:20])
	}
}

func TestCreateRTFToolMissingTemplate(t *testing.T) {
	result := callTool(t, "create_rtf", map[string]interface{}{})
	if isErr, _ := result["isError"].(bool); !isErr {
		t.Fatalf("expected isError result: %v", result)
	}
}

func TestConvertMarkdownTool(t *testing.T) {
	result := callTool(t, "convert_markdown", map[string]interface{}{
		"markdown": "# Title\n\nA paragraph with a footnote.[^1]\n\n[^1]: Note text.\n",
		"title":    "From Markdown",
		"pageSize": "Letter",
	})

	text := firstContentText(t, result)
	if !strings.Contains(text, "{\\title From Markdown}") {
		t.Fatalf("missing title:\n%s", text)
	}
	if !strings.Contains(text, "{\\footnote ") {
		t.Fatalf("missing footnote:\n%s", text)
	}
	if !strings.Contains(text, "\\paperh15840") {
		t.Fatalf("missing Letter geometry:\n%s", text)
	}
}

func TestConvertMarkdownToolUnknownPreset(t *testing.T) {
	result := callTool(t, "convert_markdown", map[string]interface{}{
		"markdown": "text",
		"pageSize": "Tabloid",
	})
	if isErr, _ := result["isError"].(bool); !isErr {
		t.Fatalf("expected isError result: %v", result)
	}
}

func TestListLayoutsTool(t *testing.T) {
	result := callTool(t, "list_layouts", map[string]interface{}{})

	text := firstContentText(t, result)
	var presets []map[string]interface{}
	if err := json.Unmarshal([]byte(text), &presets); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if len(presets) != 7 {
		t.Fatalf("expected 7 presets, got %d", len(presets))
	}
}

func TestResourcesListAndRead(t *testing.T) {
	s := NewServerWithIO(nil, nil)
	RegisterDefaultResources(s)

	result := resultMap(t, sendRequest(t, s, "resources/list", 3, nil))
	resources, ok := result["resources"].([]interface{})
	if !ok || len(resources) != 2 {
		t.Fatalf("expected 2 resources: %v", result)
	}

	result = resultMap(t, sendRequest(t, s, "resources/read", 4, map[string]interface{}{
		"uri": "rtf://template-schema",
	}))
	contents, ok := result["contents"].([]interface{})
	if !ok || len(contents) == 0 {
		t.Fatalf("missing contents: %v", result)
	}
	first, _ := contents[0].(map[string]interface{})
	text, _ := first["text"].(string)
	if !strings.Contains(text, "pageSize") {
		t.Fatalf("unexpected schema text: %q", text)
	}
}

func TestUnknownMethod(t *testing.T) {
	s := NewServerWithIO(nil, nil)

	resp := sendRequest(t, s, "no/such/method", 5, nil)
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Fatalf("expected method-not-found error, got %+v", resp)
	}
}

func TestUnknownTool(t *testing.T) {
	s := NewServerWithIO(nil, nil)

	resp := sendRequest(t, s, "tools/call", 6, map[string]interface{}{
		"name":      "no_such_tool",
		"arguments": map[string]interface{}{},
	})
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Fatalf("expected unknown-tool error, got %+v", resp)
	}
}
