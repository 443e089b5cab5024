package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// ServerConfig represents the [server] section
type ServerConfig struct {
	// JSON-RPC over HTTP
	RPCIP   string `toml:"rpc_ip" mapstructure:"rpc_ip"`
	RPCPort int    `toml:"rpc_port" mapstructure:"rpc_port"`

	// GRPCAddress is host:port of the gRPC listener; empty disables it
	GRPCAddress string `toml:"grpc_address" mapstructure:"grpc_address"`

	// Admin enables administrative methods such as fund
	Admin bool `toml:"admin" mapstructure:"admin"`

	ReadTimeout     time.Duration `toml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// RPCAddress returns the host:port the JSON-RPC server listens on
func (s *ServerConfig) RPCAddress() string {
	return net.JoinHostPort(s.RPCIP, strconv.Itoa(s.RPCPort))
}

// Validate performs validation on the server configuration
func (s *ServerConfig) Validate() error {
	if s.RPCPort < 1 || s.RPCPort > 65535 {
		return fmt.Errorf("rpc_port must be between 1 and 65535, got %d", s.RPCPort)
	}
	if s.RPCIP != "" && net.ParseIP(s.RPCIP) == nil {
		return fmt.Errorf("invalid rpc_ip: %s", s.RPCIP)
	}
	if s.GRPCAddress != "" {
		if _, _, err := net.SplitHostPort(s.GRPCAddress); err != nil {
			return fmt.Errorf("invalid grpc_address %q: %w", s.GRPCAddress, err)
		}
	}
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 || s.ShutdownTimeout < 0 {
		return fmt.Errorf("server timeouts must be non-negative")
	}
	return nil
}
