package app

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/shardeum/shardeum-mcp-server/internal/config"
	"github.com/shardeum/shardeum-mcp-server/internal/logging"
	"github.com/shardeum/shardeum-mcp-server/internal/mcp"
	"github.com/shardeum/shardeum-mcp-server/internal/prompts"
	"github.com/shardeum/shardeum-mcp-server/internal/rpc"
	"github.com/shardeum/shardeum-mcp-server/internal/tools"
)

// NewToolbox builds the shared Shardeum toolbox against a node client.
func NewToolbox(client tools.Caller) *mcp.Toolbox {
	catalog := tools.Catalog()
	list := make([]mcp.Tool, 0, len(catalog))
	for _, spec := range catalog {
		list = append(list, tools.New(spec, client))
	}
	return mcp.NewToolbox(list...)
}

// NewPromptbook builds the shared prompt catalog.
func NewPromptbook() *mcp.Promptbook {
	return mcp.NewPromptbook(prompts.Catalog()...)
}

// NewServer constructs an MCP server wired to the configured node.
func NewServer(cfg *config.Config, log *logrus.Entry) *mcp.Server {
	client := rpc.NewClient(cfg.RPCEndpoint, cfg.RequestTimeout, log.WithField("component", "rpc"))
	return mcp.NewServer(NewToolbox(client), NewPromptbook())
}

// RunHTTP starts the MCP HTTP server from config.
func RunHTTP(cfg *config.Config) error {
	log := logging.New("mcp-http", cfg.LogLevel)
	log.Infof("serving tools for node %s", cfg.RPCEndpoint)
	return mcp.RunHTTP(NewServer(cfg, log), cfg.ListenAddr, log)
}

// RunStdio serves MCP over stdin/stdout from config.
func RunStdio(ctx context.Context, cfg *config.Config) error {
	log := logging.New("mcp-stdio", cfg.LogLevel)
	log.Infof("serving tools for node %s", cfg.RPCEndpoint)
	return mcp.RunStdio(ctx, NewServer(cfg, log), os.Stdin, os.Stdout, log)
}
