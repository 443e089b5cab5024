package entry

import (
	"fmt"
)

// Type represents a ledger entry type
type Type uint16

// All known ledger entry types
const (
	// Base currency
	TypeAccountRoot Type = 0x0061 // Account objects

	// Issued assets
	TypeAssetRecord Type = 0x006d // Asset configuration and statistics
	TypeMint        Type = 0x006e // Unit-ledger denomination object
	TypeHolding     Type = 0x0068 // Per-holder unit balance

	// System Singletons
	TypeLedgerInfo Type = 0x0073 // Transaction counter and coin supply (singleton)
)

// String returns the string representation of the Type
func (t Type) String() string {
	switch t {
	case TypeAccountRoot:
		return "AccountRoot"
	case TypeAssetRecord:
		return "AssetRecord"
	case TypeMint:
		return "Mint"
	case TypeHolding:
		return "Holding"
	case TypeLedgerInfo:
		return "LedgerInfo"
	default:
		return fmt.Sprintf("Unknown(0x%04x)", uint16(t))
	}
}

// IsSingleton reports whether only one entry of this type can exist.
func (t Type) IsSingleton() bool {
	return t == TypeLedgerInfo
}

// IsOwned reports whether entries of this type count toward an account's
// owner reserve.
func (t Type) IsOwned() bool {
	switch t {
	case TypeAssetRecord, TypeMint, TypeHolding:
		return true
	default:
		return false
	}
}
