package grpc

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/service"
	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/metrics"
)

// LedgerServiceInterface defines the ledger operations needed by gRPC handlers.
// This interface is implemented by *service.Service.
type LedgerServiceInterface interface {
	GetAsset(ctx context.Context, name string) (*service.AssetInfo, error)
	GetAccount(ctx context.Context, address string, withHoldings bool) (*service.AccountInfo, error)
	Submit(ctx context.Context, transaction tx.Transaction) (*service.SubmitResult, error)
}

// Server represents the gRPC server for ledger operations.
type Server struct {
	mu sync.RWMutex

	// grpcServer is the underlying gRPC server
	grpcServer *grpc.Server

	// ledgerService provides access to ledger operations
	ledgerService LedgerServiceInterface

	// config holds the server configuration
	config *ServerConfig

	metrics *metrics.Metrics
	log     zerolog.Logger

	// listener is the network listener
	listener net.Listener

	// running indicates if the server is currently running
	running bool
}

// ServerOption is a function that configures a Server.
type ServerOption func(*Server)

// WithMetrics records every call.
func WithMetrics(m *metrics.Metrics) ServerOption {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithLogger sets the server logger.
func WithLogger(logger zerolog.Logger) ServerOption {
	return func(s *Server) {
		s.log = logger
	}
}

// NewServer creates a new gRPC server with AssetService registered.
func NewServer(cfg *ServerConfig, ledgerSvc LedgerServiceInterface, options ...ServerOption) (*Server, error) {
	if cfg == nil {
		cfg = DefaultServerConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ledgerSvc == nil {
		return nil, errors.New("ledger service is required")
	}

	server := &Server{
		ledgerService: ledgerSvc,
		config:        cfg,
		log:           zerolog.Nop(),
	}
	for _, opt := range options {
		opt(server)
	}

	server.grpcServer = grpc.NewServer(
		grpc.MaxRecvMsgSize(cfg.MaxRecvMsgSize),
		grpc.MaxSendMsgSize(cfg.MaxSendMsgSize),
		grpc.UnaryInterceptor(server.unaryInterceptor),
	)
	RegisterAssetServiceServer(server.grpcServer, server)

	return server, nil
}

// Start listens on the configured address and serves until Stop.
// This method blocks until the server is stopped or an error occurs.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

// Serve accepts connections on listener until Stop.
func (s *Server) Serve(listener net.Listener) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server is already running")
	}
	s.listener = listener
	s.running = true
	s.mu.Unlock()

	s.log.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	err := s.grpcServer.Serve(listener)
	if errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return err
}

// Stop gracefully stops the gRPC server.
// It stops accepting new connections and waits for existing calls to complete.
// A Serve that starts after Stop returns immediately.
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns true if the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Address returns the address the server is listening on.
// Returns empty string if the server is not running.
func (s *Server) Address() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// unaryInterceptor logs failed calls and records every call.
func (s *Server) unaryInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	outcome := metrics.Success
	if err != nil {
		outcome = metrics.Error
		s.log.Debug().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Err(err).
			Msg("gRPC call failed")
	}
	s.metrics.ObserveRPC(info.FullMethod, outcome, time.Since(start))
	return resp, err
}
