package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_handlers"
	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_types"
)

func newRPCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rpc <method> [params-json]",
		Short: "Run an RPC method against the local ledger",
		Long: `Execute an RPC method locally by calling the same handlers used by the server.
The node must not be running: the command opens the ledger files itself.

Example:
  memeledgerd rpc asset_info '{"asset":"Doge"}'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var params json.RawMessage
			if len(args) == 2 {
				params = json.RawMessage(args[1])
				if !json.Valid(params) {
					return fmt.Errorf("params must be a JSON object")
				}
			}
			return callMethod(cmd, args[0], params)
		},
	}
}

// callMethod opens the ledger, runs one RPC method with the admin role and
// prints its result. A submission the engine did not apply is an error.
func callMethod(cmd *cobra.Command, method string, params interface{}) error {
	raw, err := encodeParams(params)
	if err != nil {
		return err
	}
	return withNode(cmd, func(ctx context.Context, n *node) error {
		registry := rpc_types.NewMethodRegistry()
		rpc_handlers.RegisterAll(registry, n.ledger, time.Now())
		return runMethod(ctx, cmd, registry, method, raw)
	})
}

func runMethod(ctx context.Context, cmd *cobra.Command, registry *rpc_types.MethodRegistry, method string, params json.RawMessage) error {
	handler, ok := registry.Get(method)
	if !ok {
		return fmt.Errorf("unknown method %q (available: %s)", method, strings.Join(registry.List(), ", "))
	}

	rpcCtx := &rpc_types.RpcContext{
		Context: ctx,
		Role:    rpc_types.RoleAdmin,
		IsAdmin: true,
	}
	result, rpcErr := handler.Handle(rpcCtx, params)
	if rpcErr != nil {
		return fmt.Errorf("%s: %s", rpcErr.ErrorString, rpcErr.Error())
	}
	if err := printJSON(cmd, result); err != nil {
		return err
	}

	if response, ok := result.(map[string]interface{}); ok {
		if applied, ok := response["applied"].(bool); ok && !applied {
			return fmt.Errorf("transaction not applied: %v", response["engine_result"])
		}
	}
	return nil
}

func encodeParams(params interface{}) (json.RawMessage, error) {
	switch p := params.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		return p, nil
	default:
		data, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to encode params: %w", err)
		}
		return data, nil
	}
}
