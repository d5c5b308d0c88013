package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/shardeum/shardeum-mcp-server/internal/rpc"
)

// Config holds everything the server needs at startup.
type Config struct {
	RPCEndpoint    string
	ListenAddr     string
	RequestTimeout time.Duration
	LogLevel       string
}

// Load reads configuration with the precedence env > config file >
// defaults. path points at an optional YAML file; empty means env and
// defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("rpc_endpoint", rpc.DefaultEndpoint)
	v.SetDefault("listen_addr", ":3333")
	v.SetDefault("request_timeout", "30s")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("SHARDEUM_MCP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("request_timeout"))
	if err != nil {
		return nil, fmt.Errorf("parse request_timeout: %w", err)
	}

	return &Config{
		RPCEndpoint:    v.GetString("rpc_endpoint"),
		ListenAddr:     v.GetString("listen_addr"),
		RequestTimeout: timeout,
		LogLevel:       v.GetString("log_level"),
	}, nil
}
