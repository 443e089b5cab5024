package tx

import "fmt"

// Result represents a transaction result code
type Result int

// Transaction result codes, organized by category: tes, tec, tef, tem, ter
const (
	// tesSUCCESS (0)
	TesSUCCESS Result = 0

	// tec codes (100-299)
	// The request was well formed but could not be carried out against the
	// current ledger state.
	TecNO_DST               Result = 124
	TecNO_PERMISSION        Result = 139
	TecNO_ENTRY             Result = 140
	TecINSUFFICIENT_RESERVE Result = 141
	TecINTERNAL             Result = 144
	TecDUPLICATE            Result = 149
	TecINSUFFICIENT_FUNDS   Result = 159
	TecOBJECT_NOT_FOUND     Result = 160
	TecCOIN_NOT_ACTIVE      Result = 200
	TecOVERFLOW             Result = 201

	// tefFAILURE and related codes (-199 to -100)
	// The host failed while applying the transaction
	TefFAILURE    Result = -199
	TefBAD_LEDGER Result = -195
	TefEXCEPTION  Result = -193
	TefINTERNAL   Result = -192

	// temMALFORMED and related codes (-299 to -200)
	// Malformed transaction
	TemMALFORMED       Result = -299
	TemBAD_AMOUNT      Result = -298
	TemBAD_SRC_ACCOUNT Result = -281
	TemINVALID         Result = -277
	TemUNKNOWN         Result = -264
	TemBAD_DECIMALS    Result = -251

	// terRETRY and related codes (-99 to -1)
	// Retry later
	TerRETRY      Result = -99
	TerNO_ACCOUNT Result = -96
)

// String returns the string representation of the result code
func (r Result) String() string {
	switch r {
	case TesSUCCESS:
		return "tesSUCCESS"
	case TecNO_DST:
		return "tecNO_DST"
	case TecNO_PERMISSION:
		return "tecNO_PERMISSION"
	case TecNO_ENTRY:
		return "tecNO_ENTRY"
	case TecINSUFFICIENT_RESERVE:
		return "tecINSUFFICIENT_RESERVE"
	case TecINTERNAL:
		return "tecINTERNAL"
	case TecDUPLICATE:
		return "tecDUPLICATE"
	case TecINSUFFICIENT_FUNDS:
		return "tecINSUFFICIENT_FUNDS"
	case TecOBJECT_NOT_FOUND:
		return "tecOBJECT_NOT_FOUND"
	case TecCOIN_NOT_ACTIVE:
		return "tecCOIN_NOT_ACTIVE"
	case TecOVERFLOW:
		return "tecOVERFLOW"
	case TefFAILURE:
		return "tefFAILURE"
	case TefBAD_LEDGER:
		return "tefBAD_LEDGER"
	case TefEXCEPTION:
		return "tefEXCEPTION"
	case TefINTERNAL:
		return "tefINTERNAL"
	case TemMALFORMED:
		return "temMALFORMED"
	case TemBAD_AMOUNT:
		return "temBAD_AMOUNT"
	case TemBAD_SRC_ACCOUNT:
		return "temBAD_SRC_ACCOUNT"
	case TemINVALID:
		return "temINVALID"
	case TemUNKNOWN:
		return "temUNKNOWN"
	case TemBAD_DECIMALS:
		return "temBAD_DECIMALS"
	case TerRETRY:
		return "terRETRY"
	case TerNO_ACCOUNT:
		return "terNO_ACCOUNT"
	default:
		return fmt.Sprintf("Unknown(%d)", r)
	}
}

var resultsByName = func() map[string]Result {
	m := make(map[string]Result)
	for _, r := range []Result{
		TesSUCCESS,
		TecNO_DST, TecNO_PERMISSION, TecNO_ENTRY, TecINSUFFICIENT_RESERVE, TecINTERNAL,
		TecDUPLICATE, TecINSUFFICIENT_FUNDS, TecOBJECT_NOT_FOUND, TecCOIN_NOT_ACTIVE, TecOVERFLOW,
		TefFAILURE, TefBAD_LEDGER, TefEXCEPTION, TefINTERNAL,
		TemMALFORMED, TemBAD_AMOUNT, TemBAD_SRC_ACCOUNT, TemINVALID, TemUNKNOWN, TemBAD_DECIMALS,
		TerRETRY, TerNO_ACCOUNT,
	} {
		m[r.String()] = r
	}
	return m
}()

// ResultFromString parses a result code name such as "tecOVERFLOW".
func ResultFromString(name string) (Result, bool) {
	r, ok := resultsByName[name]
	return r, ok
}

// IsSuccess returns true if the result indicates success
func (r Result) IsSuccess() bool {
	return r == TesSUCCESS
}

// IsTec returns true if this is a tec code
func (r Result) IsTec() bool {
	return r >= 100 && r <= 299
}

// IsTef returns true if this is a tef (failure) code
func (r Result) IsTef() bool {
	return r >= -199 && r <= -100
}

// IsTem returns true if this is a tem (malformed) code
func (r Result) IsTem() bool {
	return r >= -299 && r <= -200
}

// IsTer returns true if this is a ter (retry) code
func (r Result) IsTer() bool {
	return r >= -99 && r <= -1
}

// ShouldRetry returns true if the transaction may succeed if resubmitted later
func (r Result) ShouldRetry() bool {
	return r.IsTer()
}

// IsApplied returns true if the transaction changed ledger state.
// Any other result discards every staged write.
func (r Result) IsApplied() bool {
	return r.IsSuccess()
}

// Message returns a human-readable message for the result
func (r Result) Message() string {
	switch r {
	case TesSUCCESS:
		return "The transaction was applied."
	case TecNO_DST:
		return "Destination account does not exist."
	case TecNO_PERMISSION:
		return "No permission to perform requested operation."
	case TecNO_ENTRY:
		return "No matching entry found."
	case TecINSUFFICIENT_RESERVE:
		return "Insufficient reserve to complete requested operation."
	case TecDUPLICATE:
		return "Ledger object already exists."
	case TecINSUFFICIENT_FUNDS:
		return "Not enough funds available to complete requested transaction."
	case TecOBJECT_NOT_FOUND:
		return "A requested object could not be located."
	case TecCOIN_NOT_ACTIVE:
		return "Meme coin is not active."
	case TecOVERFLOW:
		return "Arithmetic overflow."
	case TefINTERNAL:
		return "Internal error."
	case TemMALFORMED:
		return "Malformed transaction."
	case TemBAD_AMOUNT:
		return "Can only trade positive amounts."
	case TemBAD_SRC_ACCOUNT:
		return "Source account is malformed."
	case TemINVALID:
		return "The transaction is ill-formed."
	case TemUNKNOWN:
		return "The transaction type is unknown."
	case TemBAD_DECIMALS:
		return "Decimals exceed the supported precision."
	case TerNO_ACCOUNT:
		return "The source account does not exist."
	default:
		return r.String()
	}
}

// ResultError carries a non-success Result as a Go error.
type ResultError struct {
	Result Result
}

// NewResultError wraps r as an error. It returns nil for tesSUCCESS.
func NewResultError(r Result) error {
	if r.IsSuccess() {
		return nil
	}
	return &ResultError{Result: r}
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("%s: %s", e.Result, e.Result.Message())
}

// Is matches any ResultError with the same code.
func (e *ResultError) Is(target error) bool {
	t, ok := target.(*ResultError)
	return ok && t.Result == e.Result
}

// MarshalText renders the result by name.
func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a result name.
func (r *Result) UnmarshalText(text []byte) error {
	parsed, ok := ResultFromString(string(text))
	if !ok {
		return fmt.Errorf("unknown result code %q", text)
	}
	*r = parsed
	return nil
}
