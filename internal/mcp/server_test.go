package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shardeum/shardeum-mcp-server/internal/protocol"
)

type stubTool struct {
	name   string
	result protocol.CallResult
	err    *protocol.ResponseError
	gotRaw json.RawMessage
}

func (s *stubTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{Name: s.name, Description: "stub"}
}

func (s *stubTool) Invoke(_ context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	s.gotRaw = raw
	return s.result, s.err
}

type stubPrompt struct {
	name string
}

func (s *stubPrompt) Descriptor() protocol.PromptDescriptor {
	return protocol.PromptDescriptor{Name: s.name, Description: "stub"}
}

func (s *stubPrompt) Get(args map[string]string) (protocol.GetPromptResult, *protocol.ResponseError) {
	return protocol.GetPromptResult{
		Messages: []protocol.PromptMessage{
			{Role: "user", Content: protocol.ContentPart{Type: "text", Text: "use " + s.name + " for " + args["target"]}},
		},
	}, nil
}

func newTestServer(tools ...Tool) *Server {
	return NewServer(NewToolbox(tools...), NewPromptbook(&stubPrompt{name: "stub_prompt"}))
}

func handle(t *testing.T, s *Server, method, params string) protocol.Response {
	t.Helper()
	req := protocol.Request{JSONRPC: "2.0", ID: float64(1), Method: method}
	if params != "" {
		req.Params = json.RawMessage(params)
	}
	resp, err := s.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("%s: unexpected handler error: %v", method, err)
	}
	return resp
}

func TestInitialize(t *testing.T) {
	resp := handle(t, newTestServer(), "initialize", "")
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	if result["protocolVersion"] != ProtocolVersion {
		t.Fatalf("unexpected protocol version %v", result["protocolVersion"])
	}
	caps, ok := result["capabilities"].(map[string]any)
	if !ok {
		t.Fatalf("missing capabilities: %v", result)
	}
	if _, ok := caps["tools"]; !ok {
		t.Fatal("tools capability not advertised")
	}
	if _, ok := caps["prompts"]; !ok {
		t.Fatal("prompts capability not advertised")
	}
}

func TestPing(t *testing.T) {
	resp := handle(t, newTestServer(), "ping", "")
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
}

func TestToolsListAndCall(t *testing.T) {
	tool := &stubTool{
		name:   "stub_tool",
		result: protocol.CallResult{Content: []protocol.ContentPart{{Type: "text", Text: "hello"}}},
	}
	s := newTestServer(tool)

	resp := handle(t, s, "tools/list", "")
	list, ok := resp.Result.(protocol.ListToolsResult)
	if !ok || len(list.Tools) != 1 || list.Tools[0].Name != "stub_tool" {
		t.Fatalf("unexpected list result: %+v", resp.Result)
	}

	resp = handle(t, s, "tools/call", `{"name":"stub_tool","arguments":{"a":1}}`)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	call, ok := resp.Result.(protocol.CallResult)
	if !ok || call.Content[0].Text != "hello" {
		t.Fatalf("unexpected call result: %+v", resp.Result)
	}
	if string(tool.gotRaw) != `{"a":1}` {
		t.Fatalf("arguments not forwarded: %s", tool.gotRaw)
	}
}

func TestToolsCallErrors(t *testing.T) {
	s := newTestServer(&stubTool{name: "stub_tool"})

	cases := []struct {
		params string
		code   int
	}{
		{`{"name":"missing_tool"}`, -32601},
		{`{"name":""}`, -32602},
		{`{broken`, -32602},
	}
	for _, tc := range cases {
		resp := handle(t, s, "tools/call", tc.params)
		if resp.Error == nil || resp.Error.Code != tc.code {
			t.Fatalf("params %s expected code %d, got %+v", tc.params, tc.code, resp.Error)
		}
	}
}

func TestPromptsListAndGet(t *testing.T) {
	s := newTestServer()

	resp := handle(t, s, "prompts/list", "")
	list, ok := resp.Result.(protocol.ListPromptsResult)
	if !ok || len(list.Prompts) != 1 || list.Prompts[0].Name != "stub_prompt" {
		t.Fatalf("unexpected list result: %+v", resp.Result)
	}

	resp = handle(t, s, "prompts/get", `{"name":"stub_prompt","arguments":{"target":"x"}}`)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	got, ok := resp.Result.(protocol.GetPromptResult)
	if !ok || got.Messages[0].Content.Text != "use stub_prompt for x" {
		t.Fatalf("unexpected prompt result: %+v", resp.Result)
	}

	resp = handle(t, s, "prompts/get", `{"name":"missing"}`)
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Fatalf("expected -32601 for unknown prompt, got %+v", resp.Error)
	}
}

func TestUnknownMethod(t *testing.T) {
	resp := handle(t, newTestServer(), "resources/list", "")
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Fatalf("expected -32601, got %+v", resp.Error)
	}
}

func TestInvalidJSONRPCVersion(t *testing.T) {
	s := newTestServer()
	resp, err := s.Handle(context.Background(), protocol.Request{JSONRPC: "1.0", ID: float64(1), Method: "ping"})
	if err != nil {
		t.Fatalf("unexpected handler error: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != -32600 {
		t.Fatalf("expected -32600, got %+v", resp.Error)
	}
}
