package rpc_handlers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_types"
)

// ServerInfoMethod handles the server_info RPC method
type ServerInfoMethod struct {
	Ledger  Ledger
	Started time.Time
}

func (m *ServerInfoMethod) Handle(ctx *rpc_types.RpcContext, params json.RawMessage) (interface{}, *rpc_types.RpcError) {
	info, err := m.Ledger.ServerInfo(ctx.Context)
	if err != nil {
		return nil, errorFromLedger(err)
	}

	var uptime int64
	if !m.Started.IsZero() {
		uptime = int64(time.Since(m.Started).Seconds())
	}
	return map[string]interface{}{
		"info": map[string]interface{}{
			"tx_count":        info.TxCount,
			"total_coins":     strconv.FormatUint(info.TotalCoins, 10),
			"domain_tag":      info.DomainTag,
			"reserve_base":    info.ReserveBase,
			"reserve_inc":     info.ReserveInc,
			"history_enabled": info.HistoryEnabled,
			"history_healthy": info.HistoryHealthy,
			"uptime":          uptime,
			"role":            ctx.Role.String(),
		},
	}, nil
}

func (m *ServerInfoMethod) RequiredRole() rpc_types.Role {
	return rpc_types.RoleGuest
}
