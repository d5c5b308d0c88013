package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCallEnvelope(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x10"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil)
	result, err := client.Call(context.Background(), "eth_getBalance", "0xabc", "latest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result) != `"0x10"` {
		t.Fatalf("result not passed through verbatim: %s", result)
	}

	if captured["jsonrpc"] != "2.0" {
		t.Fatalf("expected jsonrpc 2.0, got %v", captured["jsonrpc"])
	}
	if captured["id"] != float64(1) {
		t.Fatalf("expected id 1, got %v", captured["id"])
	}
	if captured["method"] != "eth_getBalance" {
		t.Fatalf("unexpected method %v", captured["method"])
	}
	params, ok := captured["params"].([]any)
	if !ok || len(params) != 2 || params[0] != "0xabc" || params[1] != "latest" {
		t.Fatalf("unexpected params %v", captured["params"])
	}
}

func TestCallNoParamsSendsEmptyArray(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x1"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil)
	if _, err := client.Call(context.Background(), "eth_blockNumber"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	params, ok := captured["params"].([]any)
	if !ok || len(params) != 0 {
		t.Fatalf("expected empty params array, got %v", captured["params"])
	}
}

func TestCallRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"execution reverted"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil)
	_, err := client.Call(context.Background(), "eth_estimateGas", map[string]any{})
	var rpcErr *Error
	if !errors.As(err, &rpcErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if rpcErr.Code != -32000 || rpcErr.Message != "execution reverted" {
		t.Fatalf("unexpected error contents: %+v", rpcErr)
	}
}

func TestCallTransportErrors(t *testing.T) {
	badStatus := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer badStatus.Close()

	badBody := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer badBody.Close()

	refused := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	refused.Close()

	for name, url := range map[string]string{
		"non-2xx status": badStatus.URL,
		"bad body":       badBody.URL,
		"connection":     refused.URL,
	} {
		client := NewClient(url, time.Second, nil)
		_, err := client.Call(context.Background(), "eth_blockNumber")
		var tErr *TransportError
		if !errors.As(err, &tErr) {
			t.Fatalf("%s: expected *TransportError, got %v", name, err)
		}
	}
}

func TestCallNullResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":null}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil)
	result, err := client.Call(context.Background(), "eth_getTransactionByHash", "0xdead")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result) != "null" {
		t.Fatalf("expected null result, got %s", result)
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("", 0, nil)
	if client.Endpoint() != DefaultEndpoint {
		t.Fatalf("expected default endpoint, got %s", client.Endpoint())
	}
}
