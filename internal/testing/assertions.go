package testing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireBalance asserts that an account has the expected base-currency balance.
func RequireBalance(t *testing.T, env *TestEnv, acc *Account, expected uint64) {
	t.Helper()
	actual := env.Balance(acc)
	require.Equal(t, expected, actual,
		"Account %s balance mismatch: expected %d, got %d", acc.Name, expected, actual)
}

// RequireUnits asserts that an account holds the expected units of an asset.
func RequireUnits(t *testing.T, env *TestEnv, acc *Account, asset string, expected uint64) {
	t.Helper()
	actual := env.Units(acc, asset)
	require.Equal(t, expected, actual,
		"Account %s units of %s mismatch: expected %d, got %d", acc.Name, asset, expected, actual)
}

// RequireVolume asserts the running volume of an asset.
func RequireVolume(t *testing.T, env *TestEnv, asset string, expected uint64) {
	t.Helper()
	rec := env.Asset(asset)
	require.NotNil(t, rec, "Asset %s does not exist", asset)
	require.Equal(t, expected, rec.TotalVolume,
		"Asset %s volume mismatch: expected %d, got %d", asset, expected, rec.TotalVolume)
}

// RequireTxSuccess asserts that a transaction result indicates success.
func RequireTxSuccess(t *testing.T, result TxResult) {
	t.Helper()
	require.True(t, result.Success,
		"Expected transaction success, got %s: %s", result.Code, result.Message)
	require.Equal(t, "tesSUCCESS", result.Code,
		"Expected tesSUCCESS, got %s: %s", result.Code, result.Message)
}

// RequireTxFail asserts that a transaction result indicates failure with a specific code.
func RequireTxFail(t *testing.T, result TxResult, expectedCode string) {
	t.Helper()
	require.False(t, result.Success,
		"Expected transaction failure with code %s, but transaction succeeded", expectedCode)
	require.Equal(t, expectedCode, result.Code,
		"Expected failure code %s, got %s: %s", expectedCode, result.Code, result.Message)
}

// RequireAccountExists asserts that an account exists in the ledger.
func RequireAccountExists(t *testing.T, env *TestEnv, acc *Account) {
	t.Helper()
	require.True(t, env.Exists(acc),
		"Expected account %s to exist, but it does not", acc.Name)
}

// RequireUnchanged asserts that no committed entry differs from before.
func RequireUnchanged(t *testing.T, env *TestEnv, before map[[32]byte][]byte) {
	t.Helper()
	require.Equal(t, before, env.Snapshot(), "ledger state changed")
}
