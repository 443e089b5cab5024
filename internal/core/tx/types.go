package tx

// Type represents a transaction type code
type Type uint16

// All transaction type codes
const (
	TypeInvalid Type = 0xFFFF // Invalid/unknown type

	// Host transaction types
	TypeAccountFund Type = 1 // credits newly issued base currency (admin)

	// Asset transaction types
	TypeAssetCreate Type = 10 // registers an asset and provisions its mint
	TypeAssetBuy    Type = 11 // pays base currency for newly minted units
	TypeAssetSell   Type = 12 // burns units for base currency minus the fee
)

// String returns the string name of the transaction type
func (t Type) String() string {
	switch t {
	case TypeAccountFund:
		return "AccountFund"
	case TypeAssetCreate:
		return "AssetCreate"
	case TypeAssetBuy:
		return "AssetBuy"
	case TypeAssetSell:
		return "AssetSell"
	default:
		return "Invalid"
	}
}

var typeNameMap = map[string]Type{
	"AccountFund": TypeAccountFund,
	"AssetCreate": TypeAssetCreate,
	"AssetBuy":    TypeAssetBuy,
	"AssetSell":   TypeAssetSell,
}

// TypeFromName returns the transaction type for a given name
func TypeFromName(name string) (Type, bool) {
	t, ok := typeNameMap[name]
	return t, ok
}

// IsAdmin returns true for transaction types only an administrator may submit
func (t Type) IsAdmin() bool {
	return t == TypeAccountFund
}
