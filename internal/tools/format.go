package tools

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Formatter turns a raw JSON-RPC result into the text reported to the
// caller. args holds the validated tool arguments for formatters that
// reference them (e.g. the queried address).
type Formatter func(args map[string]any, result json.RawMessage) (string, error)

var weiPerSHM = new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))

func decodeHexQuantity(result json.RawMessage) (string, *big.Int, error) {
	var hex string
	if err := json.Unmarshal(result, &hex); err != nil {
		return "", nil, fmt.Errorf("expected hex quantity result, got %s", strings.TrimSpace(string(result)))
	}
	trimmed := strings.TrimPrefix(hex, "0x")
	n, ok := new(big.Int).SetString(trimmed, 16)
	if trimmed == "" || !ok {
		return "", nil, fmt.Errorf("malformed hex quantity in result: %q", hex)
	}
	return hex, n, nil
}

// HexQuantity reports a hex quantity result as decimal alongside the
// original hex, e.g. "Current block number: 16 (0x10)".
func HexQuantity(label string) Formatter {
	return func(_ map[string]any, result json.RawMessage) (string, error) {
		hex, n, err := decodeHexQuantity(result)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s: %s (%s)", label, n.String(), hex), nil
	}
}

// Balance reports a wei balance in decimal plus its SHM value at four
// decimal places.
func Balance() Formatter {
	return func(args map[string]any, result json.RawMessage) (string, error) {
		hex, wei, err := decodeHexQuantity(result)
		if err != nil {
			return "", err
		}
		shm := new(big.Float).Quo(new(big.Float).SetInt(wei), weiPerSHM)
		address, _ := args["address"].(string)
		return fmt.Sprintf("Balance for %s:\n- Wei: %s (%s)\n- SHM: %s",
			address, wei.String(), hex, shm.Text('f', 4)), nil
	}
}

// PrettyJSON reports a structured result as indented JSON under a label.
// A null result is called out rather than printed bare.
func PrettyJSON(label string) Formatter {
	return func(_ map[string]any, result json.RawMessage) (string, error) {
		if strings.TrimSpace(string(result)) == "null" {
			return fmt.Sprintf("%s: null (not found)", label), nil
		}
		var buf strings.Builder
		buf.WriteString(label)
		buf.WriteString(":\n")
		pretty, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("format result: %w", err)
		}
		buf.Write(pretty)
		return buf.String(), nil
	}
}
