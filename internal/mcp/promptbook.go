package mcp

import (
	"sort"

	"github.com/shardeum/shardeum-mcp-server/internal/protocol"
)

// Prompt defines the behavior of a single MCP prompt. Prompts never
// execute RPC calls; they only render instruction text.
type Prompt interface {
	Descriptor() protocol.PromptDescriptor
	Get(args map[string]string) (protocol.GetPromptResult, *protocol.ResponseError)
}

// Promptbook stores and dispatches prompts by name.
type Promptbook struct {
	prompts map[string]Prompt
}

// NewPromptbook constructs a promptbook with the provided prompts.
func NewPromptbook(prompts ...Prompt) *Promptbook {
	m := make(map[string]Prompt, len(prompts))
	for _, p := range prompts {
		desc := p.Descriptor()
		m[desc.Name] = p
	}
	return &Promptbook{prompts: m}
}

// Describe returns all prompt descriptors in name order.
func (pb *Promptbook) Describe() []protocol.PromptDescriptor {
	list := make([]protocol.PromptDescriptor, 0, len(pb.prompts))
	for _, p := range pb.prompts {
		list = append(list, p.Descriptor())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Get renders a named prompt with the given arguments.
func (pb *Promptbook) Get(name string, args map[string]string) (protocol.GetPromptResult, *protocol.ResponseError) {
	prompt, ok := pb.prompts[name]
	if !ok {
		return protocol.GetPromptResult{}, &protocol.ResponseError{Code: -32601, Message: "prompt not found"}
	}
	return prompt.Get(args)
}
