package memecoin

import (
	"errors"
	"fmt"

	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
)

// Asset validation errors
var (
	ErrNameEmpty      = errors.New("temMALFORMED: Name is required")
	ErrNameTooLong    = fmt.Errorf("temMALFORMED: Name exceeds maximum length of %d bytes", sle.MaxNameLength)
	ErrSymbolTooLong  = fmt.Errorf("temMALFORMED: Symbol exceeds maximum length of %d bytes", sle.MaxSymbolLength)
	ErrURITooLong     = fmt.Errorf("temMALFORMED: URI exceeds maximum length of %d bytes", sle.MaxURILength)
	ErrBadDecimals    = fmt.Errorf("temBAD_DECIMALS: Decimals must be at most %d", sle.MaxDecimals)
	ErrAssetRequired  = errors.New("temMALFORMED: Asset is required")
	ErrAmountRequired = errors.New("temBAD_AMOUNT: Amount must be positive")
)
