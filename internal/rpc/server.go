// Package rpc serves the ledger over HTTP JSON-RPC in the XRPL request
// format, plus health and Prometheus endpoints.
package rpc

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/LeJamon/goMemeLedger/internal/metrics"
	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_handlers"
	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_types"
)

// Config holds configuration for the RPC Server
type Config struct {
	// Admin grants the admin role to clients connecting from loopback
	Admin bool

	// MetricsPath is where the Prometheus handler is mounted when Metrics is set
	MetricsPath string

	Metrics *metrics.Metrics
	Logger  zerolog.Logger
}

// Server handles HTTP JSON-RPC requests using XRPL format
type Server struct {
	registry *rpc_types.MethodRegistry
	router   chi.Router
	ledger   rpc_handlers.Ledger
	admin    bool
	metrics  *metrics.Metrics
	log      zerolog.Logger
}

// NewServer creates a new RPC server backed by ledger
func NewServer(ledger rpc_handlers.Ledger, cfg Config) *Server {
	server := &Server{
		registry: rpc_types.NewMethodRegistry(),
		ledger:   ledger,
		admin:    cfg.Admin,
		metrics:  cfg.Metrics,
		log:      cfg.Logger,
	}
	rpc_handlers.RegisterAll(server.registry, ledger, time.Now())

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/health", server.handleHealth)
	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, cfg.Metrics.Handler())
	}
	r.Options("/", server.handlePreflight)
	r.Get("/", server.handleGetRequest)
	r.Post("/", server.handlePostRequest)
	server.router = r

	return server
}

// Methods returns the names of the registered methods.
func (s *Server) Methods() []string {
	return s.registry.List()
}

// XrplRequest represents an XRPL JSON-RPC request
// Format: {"method": "method_name", "params": [{...}]}
type XrplRequest struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params,omitempty"`
}

// ServeHTTP implements http.Handler interface
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Set CORS headers to match rippled
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	s.router.ServeHTTP(w, r)
}

func (s *Server) handlePreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// handleHealth reports whether the ledger answers queries
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	info, err := s.ledger.ServerInfo(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":          "ok",
		"tx_count":        info.TxCount,
		"history_enabled": info.HistoryEnabled,
		"history_healthy": info.HistoryHealthy,
	})
}

// handleGetRequest processes GET requests with query parameters
func (s *Server) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Query().Get("command")
	if method == "" {
		// Default to server_info for GET requests without command
		method = "server_info"
	}

	ctx := &rpc_types.RpcContext{
		Context:  r.Context(),
		Role:     rpc_types.RoleGuest,
		ClientIP: getClientIP(r),
	}

	result, rpcErr := s.executeMethod(method, nil, ctx)
	s.writeXrplResponse(w, nil, result, rpcErr)
}

// handlePostRequest processes POST requests with XRPL JSON-RPC payload
func (s *Server) handlePostRequest(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeXrplResponse(w, nil, nil, rpc_types.RpcErrorInternal("Failed to read request body"))
		return
	}
	defer r.Body.Close()

	var request XrplRequest
	if err := json.Unmarshal(body, &request); err != nil {
		s.writeXrplResponse(w, nil, nil, rpc_types.RpcErrorJsonInvalid("Invalid JSON: "+err.Error()))
		return
	}
	if request.Method == "" {
		s.writeXrplResponse(w, nil, nil, rpc_types.RpcErrorMissingCommand())
		return
	}

	// XRPL uses params as an array with one object
	var params json.RawMessage
	if len(request.Params) > 0 {
		params = request.Params[0]
	}

	ctx := &rpc_types.RpcContext{
		Context:  r.Context(),
		Role:     rpc_types.RoleUser,
		ClientIP: getClientIP(r),
	}
	if s.admin && isLoopback(r.RemoteAddr) {
		ctx.Role = rpc_types.RoleAdmin
		ctx.IsAdmin = true
	}

	result, rpcErr := s.executeMethod(request.Method, params, ctx)

	// Build request object for error responses
	var requestObj interface{}
	if params != nil {
		var reqMap map[string]interface{}
		if err := json.Unmarshal(params, &reqMap); err == nil {
			reqMap["command"] = request.Method
			requestObj = reqMap
		}
	} else {
		requestObj = map[string]interface{}{"command": request.Method}
	}

	s.writeXrplResponse(w, requestObj, result, rpcErr)
}

// executeMethod executes an RPC method with the given parameters
func (s *Server) executeMethod(method string, params json.RawMessage, ctx *rpc_types.RpcContext) (result interface{}, rpcErr *rpc_types.RpcError) {
	start := time.Now()
	label := method
	defer func() {
		outcome := metrics.Success
		if rpcErr != nil {
			outcome = metrics.Error
		}
		s.metrics.ObserveRPC(label, outcome, time.Since(start))
	}()

	handler, exists := s.registry.Get(method)
	if !exists {
		// unknown names are client input and would grow the label set
		label = "unknown"
		return nil, rpc_types.RpcErrorMethodNotFound(method)
	}

	if ctx.Role < handler.RequiredRole() {
		return nil, rpc_types.RpcErrorNoPermission("You don't have permission for this command.")
	}

	result, rpcErr = handler.Handle(ctx, params)
	if rpcErr != nil && rpcErr.Code == rpc_types.RpcINTERNAL {
		s.log.Error().
			Str("method", method).
			Str("client", ctx.ClientIP).
			Str("error", rpcErr.Message).
			Msg("rpc method failed")
	}
	return result, rpcErr
}

// writeXrplResponse writes an XRPL format JSON-RPC response
// XRPL responses carry result.status "success" or "error"
func (s *Server) writeXrplResponse(w http.ResponseWriter, request interface{}, result interface{}, rpcErr *rpc_types.RpcError) {
	w.Header().Set("Content-Type", "application/json")
	response := make(map[string]interface{})

	if rpcErr != nil {
		// XRPL includes error, error_code, error_message inside result
		resultObj := map[string]interface{}{
			"status":        "error",
			"error":         rpcErr.ErrorString,
			"error_code":    rpcErr.Code,
			"error_message": rpcErr.Message,
		}
		if request != nil {
			resultObj["request"] = request
		}
		response["result"] = resultObj
	} else {
		if resultMap, ok := result.(map[string]interface{}); ok {
			resultMap["status"] = "success"
			response["result"] = resultMap
		} else {
			response["result"] = map[string]interface{}{
				"status": "success",
				"data":   result,
			}
		}
	}

	responseData, err := json.Marshal(response)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to marshal response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(responseData)
}

// getClientIP extracts the client IP from the request
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// isLoopback checks the connection address only; forwarding headers are
// not trusted for the admin role.
func isLoopback(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
