package tools

import (
	"errors"
	"testing"
)

func TestCheckBlockParameter(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"latest", true},
		{"earliest", true},
		{"pending", true},
		{"0x10", true},
		{"0xde0b6b3a7640000", true},
		{"16", false},
		{"newest", false},
		{"0x", false},
		{"", false},
	}
	for _, tc := range cases {
		err := CheckBlockParameter("block", tc.value)
		if tc.ok && err != nil {
			t.Fatalf("%q unexpectedly rejected: %v", tc.value, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q unexpectedly accepted", tc.value)
		}
	}
}

func TestValidationErrorNamesField(t *testing.T) {
	err := CheckAddress("address", "0x123")
	if err == nil {
		t.Fatal("short address accepted")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "address" {
		t.Fatalf("expected ValidationError naming the field, got %v", err)
	}
}
