package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/LeJamon/goMemeLedger/internal/config"
	ledgergrpc "github.com/LeJamon/goMemeLedger/internal/grpc"
	"github.com/LeJamon/goMemeLedger/internal/logging"
	"github.com/LeJamon/goMemeLedger/internal/metrics"
	"github.com/LeJamon/goMemeLedger/internal/rpc"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the ledger node",
		Long: `Start the memeledgerd node which provides:
- HTTP JSON-RPC API on [server] rpc_ip:rpc_port
- gRPC AssetService on [server] grpc_address
- Health check and Prometheus metrics endpoints

This is the default command when no subcommand is specified.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, cfg, log, nil)
}

// serve runs the node until ctx is cancelled or a listener fails. When
// ready is non-nil it receives the bound RPC address once listening; it
// must be buffered.
func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger, ready chan<- string) error {
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	n, err := openNode(ctx, cfg, log, m)
	if err != nil {
		return err
	}
	defer func() {
		if err := n.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed to close ledger")
		}
	}()

	// Funding stays gated by the admin role at both front ends.
	ledger := n.ledger
	rpcServer := rpc.NewServer(ledger, rpc.Config{
		Admin:       cfg.Server.Admin,
		MetricsPath: cfg.Metrics.Path,
		Metrics:     m,
		Logger:      logging.Component(log, "rpc"),
	})
	httpServer := &http.Server{
		Handler:      rpcServer,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	listener, err := net.Listen("tcp", cfg.Server.RPCAddress())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.RPCAddress(), err)
	}

	var grpcServer *ledgergrpc.Server
	if cfg.Server.GRPCAddress != "" {
		grpcCfg := ledgergrpc.DefaultServerConfig()
		grpcCfg.Address = cfg.Server.GRPCAddress
		grpcCfg.Admin = cfg.Server.Admin
		grpcServer, err = ledgergrpc.NewServer(grpcCfg, ledger,
			ledgergrpc.WithMetrics(m),
			ledgergrpc.WithLogger(logging.Component(log, "grpc")))
		if err != nil {
			listener.Close()
			return fmt.Errorf("failed to create gRPC server: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().
			Str("address", listener.Addr().String()).
			Bool("admin", cfg.Server.Admin).
			Msg("JSON-RPC server listening")
		if ready != nil {
			ready <- listener.Addr().String()
		}
		if err := httpServer.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("JSON-RPC server: %w", err)
		}
		return nil
	})

	if grpcServer != nil {
		g.Go(func() error {
			if err := grpcServer.Start(); err != nil {
				return fmt.Errorf("gRPC server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
		defer cancel()
		if grpcServer != nil {
			grpcServer.Stop()
		}
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func shutdownTimeout(cfg *config.Config) time.Duration {
	if cfg.Server.ShutdownTimeout > 0 {
		return cfg.Server.ShutdownTimeout
	}
	return 10 * time.Second
}
