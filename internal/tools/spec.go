package tools

import (
	"math"

	"github.com/shardeum/shardeum-mcp-server/internal/protocol"
)

// Check validates a decoded argument value.
type Check func(field string, v any) error

// Param declares one positional RPC parameter and how it is exposed in
// the tool's input schema.
type Param struct {
	Name        string
	Description string
	Type        string // JSON schema type: string, boolean, integer, object
	Pattern     string // surfaced in the schema for string params
	Enum        []string
	Required    bool
	// Default is substituted when the argument is absent. A nil Default on
	// an optional param means the positional parameter is omitted entirely
	// (only valid in trailing position, e.g. an optional cycle number).
	Default any
	Check   Check
}

// Spec is one row of the tool catalog: everything a generic handler needs
// to validate arguments, issue the RPC call, and format the reply.
type Spec struct {
	Name        string
	Description string
	Method      string
	Params      []Param
	Format      Formatter
}

// Descriptor renders the spec as an MCP tool descriptor.
func (s Spec) Descriptor() protocol.ToolDescriptor {
	props := make(map[string]protocol.JSONSchema, len(s.Params))
	var required []string
	for _, p := range s.Params {
		schema := protocol.JSONSchema{
			Type:        p.Type,
			Description: p.Description,
			Pattern:     p.Pattern,
			Enum:        p.Enum,
		}
		if !p.Required && p.Default != nil {
			schema.Default = p.Default
		}
		props[p.Name] = schema
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return protocol.ToolDescriptor{
		Name:        s.Name,
		Description: s.Description,
		InputSchema: &protocol.JSONSchema{
			Type:                 "object",
			Properties:           props,
			Required:             required,
			AdditionalProperties: false,
		},
	}
}

// BuildParams validates args against the spec and returns the positional
// parameter list in declaration order. No network I/O happens here; a
// failed check means the RPC call is never issued.
func (s Spec) BuildParams(args map[string]any) ([]any, error) {
	positional := make([]any, 0, len(s.Params))
	for _, p := range s.Params {
		v, present := args[p.Name]
		if !present {
			if p.Required {
				return nil, &ValidationError{Field: p.Name, Reason: "required argument missing"}
			}
			if p.Default == nil {
				continue
			}
			v = p.Default
		}
		v, err := coerce(p, v)
		if err != nil {
			return nil, err
		}
		if p.Check != nil {
			if err := p.Check(p.Name, v); err != nil {
				return nil, err
			}
		}
		positional = append(positional, v)
	}
	for name := range args {
		if !s.hasParam(name) {
			return nil, &ValidationError{Field: name, Reason: "unknown argument"}
		}
	}
	return positional, nil
}

func (s Spec) hasParam(name string) bool {
	for _, p := range s.Params {
		if p.Name == name {
			return true
		}
	}
	return false
}

// coerce normalizes decoded JSON values to the param's declared type.
// json.Unmarshal delivers all numbers as float64.
func coerce(p Param, v any) (any, error) {
	switch p.Type {
	case "string":
		s, ok := v.(string)
		if !ok {
			return nil, &ValidationError{Field: p.Name, Reason: "must be a string"}
		}
		return s, nil
	case "boolean":
		b, ok := v.(bool)
		if !ok {
			return nil, &ValidationError{Field: p.Name, Reason: "must be a boolean"}
		}
		return b, nil
	case "integer":
		switch n := v.(type) {
		case int:
			return n, nil
		case float64:
			if n != math.Trunc(n) {
				return nil, &ValidationError{Field: p.Name, Reason: "must be an integer"}
			}
			return int(n), nil
		default:
			return nil, &ValidationError{Field: p.Name, Reason: "must be an integer"}
		}
	case "object":
		m, ok := v.(map[string]any)
		if !ok {
			return nil, &ValidationError{Field: p.Name, Reason: "must be an object"}
		}
		return m, nil
	default:
		return v, nil
	}
}
