// Package testing provides test infrastructure for ledger transaction testing.
//
// # Overview
//
// The testing package provides:
//   - TestEnv: a test environment over an in-memory ledger
//   - Account: deterministic test accounts with keypairs
//   - Assertions: helpers for balances, units, volume and result codes
//
// Per-transaction builders live in subpackages (see testing/memecoin).
//
// # Basic Usage
//
//	func TestBuy(t *testing.T) {
//	    env := testing.NewTestEnv(t)
//
//	    alice := testing.NewAccount("alice")
//	    bob := testing.NewAccount("bob")
//	    env.Fund(alice, bob)
//
//	    testing.RequireTxSuccess(t, env.Submit(memecoin.Create(alice, "Doge").Price(5).Build()))
//	    testing.RequireTxSuccess(t, env.Submit(memecoin.Buy(bob, "Doge", 1000).Build()))
//	    testing.RequireUnits(t, env, bob, "Doge", 1000)
//	}
//
// # Failure injection
//
// WithLedgers swaps the collaborator ledgers of the engine while keeping the
// committed state, so a test can make a mint or a transfer fail halfway and
// check with Snapshot and RequireUnchanged that nothing was persisted.
package testing
