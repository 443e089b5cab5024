package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets all default values
func setDefaults(v *viper.Viper) {
	// 1. Server defaults
	v.SetDefault("server.rpc_ip", "127.0.0.1")
	v.SetDefault("server.rpc_port", 5005)
	v.SetDefault("server.grpc_address", "127.0.0.1:50051")
	v.SetDefault("server.admin", true)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	// 2. Ledger defaults; reserves are free unless configured
	v.SetDefault("ledger.domain_tag", "meme_coin")
	v.SetDefault("ledger.program_id", "memeledger")
	v.SetDefault("ledger.reserve_base", 0)
	v.SetDefault("ledger.reserve_increment", 0)

	// 3. Database defaults
	v.SetDefault("node_db.type", "pebble")
	v.SetDefault("node_db.path", "data")
	v.SetDefault("node_db.cache_size", 64)
	v.SetDefault("node_db.entry_cache", 4096)
	v.SetDefault("node_db.compression", "lz4")

	v.SetDefault("history.enabled", true)
	v.SetDefault("history.driver", "sqlite")
	v.SetDefault("history.dsn", "data/history.db")
	v.SetDefault("history.max_open_conns", 25)
	v.SetDefault("history.max_idle_conns", 5)
	v.SetDefault("history.conn_max_lifetime", time.Hour)
	v.SetDefault("history.timeout", 30*time.Second)
	v.SetDefault("history.max_retries", 3)
	v.SetDefault("history.retry_delay", 100*time.Millisecond)

	// 4. Diagnostics defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
