package tools

import (
	"fmt"
	"regexp"
)

// Input patterns per the Ethereum JSON-RPC hex conventions.
const (
	AddressPattern  = `^0x[a-fA-F0-9]{40}$`
	HashPattern     = `^0x[a-fA-F0-9]{64}$`
	QuantityPattern = `^0x[a-fA-F0-9]+$`
)

var (
	addressRe  = regexp.MustCompile(AddressPattern)
	hashRe     = regexp.MustCompile(HashPattern)
	quantityRe = regexp.MustCompile(QuantityPattern)
)

// ValidationError reports an argument that failed its schema before any
// network call was made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CheckAddress validates a 20-byte hex address.
func CheckAddress(field, v string) error {
	if !addressRe.MatchString(v) {
		return &ValidationError{Field: field, Reason: "must be a 0x-prefixed 40 hex digit address"}
	}
	return nil
}

// CheckHash validates a 32-byte hex hash.
func CheckHash(field, v string) error {
	if !hashRe.MatchString(v) {
		return &ValidationError{Field: field, Reason: "must be a 0x-prefixed 64 hex digit hash"}
	}
	return nil
}

// CheckQuantity validates a free-form hex quantity.
func CheckQuantity(field, v string) error {
	if !quantityRe.MatchString(v) {
		return &ValidationError{Field: field, Reason: "must be a 0x-prefixed hex quantity"}
	}
	return nil
}

// CheckBlockParameter validates a block number or one of the named tags.
func CheckBlockParameter(field, v string) error {
	switch v {
	case "latest", "earliest", "pending":
		return nil
	}
	if !quantityRe.MatchString(v) {
		return &ValidationError{Field: field, Reason: "must be a hex block number or latest/earliest/pending"}
	}
	return nil
}

// CheckCallObject validates the transaction object accepted by gas
// estimation: addresses for from/to, hex quantities for the rest.
// Unknown fields are rejected so typos fail loudly.
func CheckCallObject(field string, v map[string]any) error {
	for key, raw := range v {
		s, ok := raw.(string)
		if !ok {
			return &ValidationError{Field: field + "." + key, Reason: "must be a string"}
		}
		switch key {
		case "from", "to":
			if err := CheckAddress(field+"."+key, s); err != nil {
				return err
			}
		case "gas", "gasPrice", "value", "nonce", "data":
			if err := CheckQuantity(field+"."+key, s); err != nil {
				return err
			}
		default:
			return &ValidationError{Field: field + "." + key, Reason: "unknown transaction field"}
		}
	}
	return nil
}
