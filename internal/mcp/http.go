package mcp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/shardeum/shardeum-mcp-server/internal/protocol"
)

// Handler builds the HTTP surface: POST / for MCP JSON-RPC, GET /health.
// One JSON-RPC request per POST; no batching.
func Handler(server *Server, log *logrus.Entry) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		reqID := uuid.NewString()
		entry := log.WithField("request_id", reqID)

		var in protocol.Request
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			entry.WithError(err).Warn("malformed request body")
			writeJSON(w, protocol.Response{Error: &protocol.ResponseError{Code: -32700, Message: "invalid JSON"}}, http.StatusBadRequest)
			return
		}

		resp, err := server.Handle(req.Context(), in)
		if err != nil {
			entry.WithError(err).Error("handler failure")
			writeJSON(w, WriteError(in.ID, -32603, "internal error", err), http.StatusInternalServerError)
			return
		}

		entry.WithField("method", in.Method).Debug("request served")
		writeJSON(w, resp, http.StatusOK)
	}).Methods(http.MethodPost)

	return r
}

// RunHTTP starts an HTTP server that serves MCP JSON-RPC requests via POST.
func RunHTTP(server *Server, addr string, log *logrus.Entry) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(server, log),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Infof("HTTP MCP server listening on %s", addr)
	return srv.ListenAndServe()
}

func writeJSON(w http.ResponseWriter, resp protocol.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}
