// Package tools exposes the node's JSON-RPC methods as MCP tools. Every
// tool follows the same shape — validate arguments, issue one RPC call,
// format the result as text — so a single table-driven handler serves the
// whole catalog.
package tools

import (
	"context"
	"encoding/json"

	"github.com/shardeum/shardeum-mcp-server/internal/protocol"
)

// Caller issues a single JSON-RPC call. Satisfied by *rpc.Client.
type Caller interface {
	Call(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// rpcTool is the generic handler behind every catalog entry.
type rpcTool struct {
	spec   Spec
	client Caller
}

// New binds a catalog spec to an RPC client.
func New(spec Spec, client Caller) *rpcTool {
	return &rpcTool{spec: spec, client: client}
}

func (t *rpcTool) Descriptor() protocol.ToolDescriptor {
	return t.spec.Descriptor()
}

// Invoke runs the validate → call → format pipeline. Validation,
// transport, and remote RPC failures all come back as an error-flagged
// text result; only undecodable argument JSON is a protocol-level fault.
func (t *rpcTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	args := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
		}
	}

	positional, err := t.spec.BuildParams(args)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := t.client.Call(ctx, t.spec.Method, positional...)
	if err != nil {
		return errorResult(err), nil
	}

	text, err := t.spec.Format(args, result)
	if err != nil {
		return errorResult(err), nil
	}
	return protocol.CallResult{Content: []protocol.ContentPart{{Type: "text", Text: text}}}, nil
}

func errorResult(err error) protocol.CallResult {
	return protocol.CallResult{
		IsError: true,
		Content: []protocol.ContentPart{{Type: "text", Text: "Error: " + err.Error()}},
	}
}
