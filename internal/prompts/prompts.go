// Package prompts holds canned instruction templates paralleling the
// tool catalog. A prompt validates the same argument shapes as its tool
// but performs no RPC call; it only renders text telling the assistant
// which tool to use.
package prompts

import (
	"fmt"
	"strconv"

	"github.com/shardeum/shardeum-mcp-server/internal/mcp"
	"github.com/shardeum/shardeum-mcp-server/internal/protocol"
	"github.com/shardeum/shardeum-mcp-server/internal/tools"
)

type checkFunc func(field, v string) error

type prompt struct {
	name        string
	description string
	arguments   []protocol.PromptArgument
	checks      map[string]checkFunc
	render      func(args map[string]string) string
}

func (p *prompt) Descriptor() protocol.PromptDescriptor {
	return protocol.PromptDescriptor{
		Name:        p.name,
		Description: p.description,
		Arguments:   p.arguments,
	}
}

func (p *prompt) Get(args map[string]string) (protocol.GetPromptResult, *protocol.ResponseError) {
	for _, a := range p.arguments {
		v, ok := args[a.Name]
		if !ok || v == "" {
			if a.Required {
				return protocol.GetPromptResult{}, &protocol.ResponseError{Code: -32602, Message: "missing required argument: " + a.Name}
			}
			continue
		}
		if check := p.checks[a.Name]; check != nil {
			if err := check(a.Name, v); err != nil {
				return protocol.GetPromptResult{}, &protocol.ResponseError{Code: -32602, Message: err.Error()}
			}
		}
	}
	return protocol.GetPromptResult{
		Description: p.description,
		Messages: []protocol.PromptMessage{
			{Role: "user", Content: protocol.ContentPart{Type: "text", Text: p.render(args)}},
		},
	}, nil
}

func checkDecimal(field, v string) error {
	if _, err := strconv.Atoi(v); err != nil {
		return fmt.Errorf("invalid %s: must be a decimal integer", field)
	}
	return nil
}

func orLatest(v string) string {
	if v == "" {
		return "latest"
	}
	return v
}

// Catalog lists every exposed prompt.
func Catalog() []mcp.Prompt {
	return []mcp.Prompt{
		&prompt{
			name:        "check_balance",
			description: "Check the SHM balance of a Shardeum address.",
			arguments: []protocol.PromptArgument{
				{Name: "address", Description: "Account address to check", Required: true},
				{Name: "block", Description: "Block number or tag, defaults to latest"},
			},
			checks: map[string]checkFunc{
				"address": tools.CheckAddress,
				"block":   tools.CheckBlockParameter,
			},
			render: func(args map[string]string) string {
				return fmt.Sprintf(
					"Use the get_balance tool to look up the balance of %s at block %s, then summarize the wei and SHM amounts for the user.",
					args["address"], orLatest(args["block"]))
			},
		},
		&prompt{
			name:        "analyze_block",
			description: "Inspect a block and summarize its contents.",
			arguments: []protocol.PromptArgument{
				{Name: "block", Description: "Block number or tag, defaults to latest"},
			},
			checks: map[string]checkFunc{
				"block": tools.CheckBlockParameter,
			},
			render: func(args map[string]string) string {
				return fmt.Sprintf(
					"Use the get_block_by_number tool to fetch block %s with full transactions, then describe its timestamp, gas usage, and transaction activity. Use get_block_receipts if receipt details are needed.",
					orLatest(args["block"]))
			},
		},
		&prompt{
			name:        "inspect_transaction",
			description: "Look up a transaction and its receipt.",
			arguments: []protocol.PromptArgument{
				{Name: "txHash", Description: "Hash of the transaction", Required: true},
			},
			checks: map[string]checkFunc{
				"txHash": tools.CheckHash,
			},
			render: func(args map[string]string) string {
				return fmt.Sprintf(
					"Use the get_transaction_by_hash tool to fetch transaction %s, then get_transaction_receipt for its execution outcome. Explain the sender, recipient, value, and whether it succeeded.",
					args["txHash"])
			},
		},
		&prompt{
			name:        "network_status",
			description: "Report the current state of the Shardeum network.",
			render: func(map[string]string) string {
				return "Use the get_block_number, get_chain_id, get_node_list, and get_network_account tools to gather the current network state, then give a short status report covering chain, latest block, validator count, and network parameters."
			},
		},
		&prompt{
			name:        "cycle_report",
			description: "Summarize a Shardeum cycle.",
			arguments: []protocol.PromptArgument{
				{Name: "cycle", Description: "Cycle number; omit for the current cycle"},
			},
			checks: map[string]checkFunc{
				"cycle": checkDecimal,
			},
			render: func(args map[string]string) string {
				if c := args["cycle"]; c != "" {
					return fmt.Sprintf("Use the get_cycle_info tool with cycle %s and summarize the cycle's duration, active nodes, and any notable events.", c)
				}
				return "Use the get_cycle_info tool without arguments to fetch the current cycle and summarize its duration, active nodes, and any notable events."
			},
		},
	}
}
