// Package grpc serves the ledger's AssetService over gRPC.
package grpc

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// defaultMsgSize bounds request and response messages. Holdings lists are
// the largest payload.
const defaultMsgSize = 4 << 20

// ErrInvalidConfig wraps every ServerConfig validation failure.
var ErrInvalidConfig = errors.New("invalid gRPC server config")

// ServerConfig holds configuration for the gRPC server.
type ServerConfig struct {
	// Address is host:port to listen on. Port 0 picks a free port.
	Address string

	// Admin allows administrative transactions such as AccountFund
	// through Submit.
	Admin bool

	MaxRecvMsgSize int
	MaxSendMsgSize int
}

// DefaultServerConfig returns the loopback listener used when [server]
// grpc_address is not overridden.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:        "127.0.0.1:50051",
		MaxRecvMsgSize: defaultMsgSize,
		MaxSendMsgSize: defaultMsgSize,
	}
}

// Validate checks the address and message limits.
func (c *ServerConfig) Validate() error {
	host, port, err := net.SplitHostPort(c.Address)
	if err != nil {
		return fmt.Errorf("%w: address %q: %v", ErrInvalidConfig, c.Address, err)
	}
	if host == "" {
		return fmt.Errorf("%w: address %q has no host", ErrInvalidConfig, c.Address)
	}
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return fmt.Errorf("%w: port %q", ErrInvalidConfig, port)
	}
	if c.MaxRecvMsgSize <= 0 || c.MaxSendMsgSize <= 0 {
		return fmt.Errorf("%w: message size limits must be positive", ErrInvalidConfig)
	}
	return nil
}
