package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/shardeum/shardeum-mcp-server/internal/protocol"
)

const maxLineBytes = 4 * 1024 * 1024

// RunStdio serves MCP over newline-delimited JSON-RPC on in/out, the
// transport assistant hosts use when they spawn the server directly.
// Notifications get no reply. Returns when in is exhausted.
func RunStdio(ctx context.Context, server *Server, in io.Reader, out io.Writer, log *logrus.Entry) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req protocol.Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			log.WithError(err).Warn("malformed request line")
			if err := enc.Encode(protocol.Response{JSONRPC: "2.0", ID: "0", Error: &protocol.ResponseError{Code: -32700, Message: "invalid JSON"}}); err != nil {
				return err
			}
			continue
		}
		if strings.HasPrefix(req.Method, "notifications/") {
			continue
		}

		resp, err := server.Handle(ctx, req)
		if err != nil {
			resp = WriteError(req.ID, -32603, "internal error", err)
		}
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}
