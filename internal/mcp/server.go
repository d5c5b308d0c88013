package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shardeum/shardeum-mcp-server/internal/protocol"
	"github.com/shardeum/shardeum-mcp-server/internal/version"
)

// ProtocolVersion is the MCP revision this server speaks.
const ProtocolVersion = "2024-11-05"

// Server handles MCP JSON-RPC requests against a toolbox and promptbook.
type Server struct {
	toolbox    *Toolbox
	promptbook *Promptbook
}

// NewServer wires a toolbox and promptbook into an MCP server.
func NewServer(tb *Toolbox, pb *Promptbook) *Server {
	return &Server{toolbox: tb, promptbook: pb}
}

// Handle routes a single request.
func (s *Server) Handle(ctx context.Context, req protocol.Request) (protocol.Response, error) {
	if err := validateJSONRPC(req); err != nil {
		return respondErr(req.ID, err), nil
	}

	switch req.Method {
	case "initialize":
		return respond(req.ID, map[string]any{
			"protocolVersion": ProtocolVersion,
			"serverInfo": map[string]string{
				"name":    "shardeum-mcp-server",
				"version": version.Get().Version,
			},
			"capabilities": map[string]any{
				"tools":   map[string]any{},
				"prompts": map[string]any{},
			},
		}), nil
	case "ping":
		return respond(req.ID, map[string]any{}), nil
	case "tools/list":
		return respond(req.ID, protocol.ListToolsResult{Tools: s.toolbox.Describe()}), nil
	case "tools/call":
		var params protocol.CallParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return respondErr(req.ID, &protocol.ResponseError{Code: -32602, Message: "invalid params"}), nil
		}
		if params.Name == "" {
			return respondErr(req.ID, &protocol.ResponseError{Code: -32602, Message: "tool name required"}), nil
		}
		result, toolErr := s.toolbox.Call(ctx, params.Name, params.Args)
		if toolErr != nil {
			return respondErr(req.ID, toolErr), nil
		}
		return respond(req.ID, result), nil
	case "prompts/list":
		return respond(req.ID, protocol.ListPromptsResult{Prompts: s.promptbook.Describe()}), nil
	case "prompts/get":
		var params protocol.GetPromptParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return respondErr(req.ID, &protocol.ResponseError{Code: -32602, Message: "invalid params"}), nil
		}
		if params.Name == "" {
			return respondErr(req.ID, &protocol.ResponseError{Code: -32602, Message: "prompt name required"}), nil
		}
		result, promptErr := s.promptbook.Get(params.Name, params.Args)
		if promptErr != nil {
			return respondErr(req.ID, promptErr), nil
		}
		return respond(req.ID, result), nil
	default:
		return respondErr(req.ID, &protocol.ResponseError{Code: -32601, Message: "method not found"}), nil
	}
}

// WriteError builds a response with an error and wraps encode issues.
func WriteError(id any, code int, message string, err error) protocol.Response {
	detail := message
	if err != nil {
		detail = fmt.Sprintf("%s: %v", message, err)
	}
	return respondErr(id, &protocol.ResponseError{Code: code, Message: detail})
}

func respond(id any, result any) protocol.Response {
	return protocol.Response{JSONRPC: "2.0", ID: normalizeID(id), Result: result}
}

func respondErr(id any, err *protocol.ResponseError) protocol.Response {
	return protocol.Response{JSONRPC: "2.0", ID: normalizeID(id), Error: err}
}

func validateJSONRPC(req protocol.Request) *protocol.ResponseError {
	if req.JSONRPC != "" && req.JSONRPC != "2.0" {
		return &protocol.ResponseError{Code: -32600, Message: "invalid jsonrpc version"}
	}
	return nil
}

func normalizeID(id any) any {
	if id == nil {
		return "0"
	}
	switch v := id.(type) {
	case string:
		return v
	case float64:
		return v
	case int, int32, int64, uint32, uint64:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
