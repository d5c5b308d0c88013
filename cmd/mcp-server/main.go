package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shardeum/shardeum-mcp-server/internal/app"
	"github.com/shardeum/shardeum-mcp-server/internal/config"
	"github.com/shardeum/shardeum-mcp-server/internal/version"
)

func main() {
	_ = godotenv.Load()

	var (
		configPath string
		httpAddr   string
		endpoint   string
	)

	load := func() (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		if httpAddr != "" {
			cfg.ListenAddr = httpAddr
		}
		if endpoint != "" {
			cfg.RPCEndpoint = endpoint
		}
		return cfg, nil
	}

	rootCmd := &cobra.Command{
		Use:   "shardeum-mcp-server",
		Short: "MCP server exposing Shardeum JSON-RPC methods as tools and prompts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return app.RunHTTP(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&endpoint, "rpc-endpoint", "", "node JSON-RPC endpoint override")
	rootCmd.Flags().StringVar(&httpAddr, "http", "", "MCP HTTP listen address override (e.g. :3333)")

	stdioCmd := &cobra.Command{
		Use:   "stdio",
		Short: "Serve MCP over stdin/stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return app.RunStdio(cmd.Context(), cfg)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(*cobra.Command, []string) {
			fmt.Println(version.Get())
		},
	}

	rootCmd.AddCommand(stdioCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
