package testing

import "github.com/LeJamon/goMemeLedger/internal/core/tx"

// TxResult represents the result of applying a transaction.
type TxResult struct {
	// Code is the transaction engine result code (e.g., "tesSUCCESS").
	Code string

	// Success indicates whether the transaction was successfully applied.
	Success bool

	// Message provides additional details about the result.
	Message string

	// Hash is the transaction id, zero when rejected before hashing.
	Hash [32]byte

	// Metadata describes what the transaction touched, if it got that far.
	Metadata *tx.Metadata
}

// IsSuccess returns true for tesSUCCESS.
func (r TxResult) IsSuccess() bool {
	return r.Code == "tesSUCCESS"
}

// IsClaimed returns true for tec codes.
func (r TxResult) IsClaimed() bool {
	return ResultCodeCategory(r.Code) == "claimed"
}

// IsRetry returns true for ter codes.
func (r TxResult) IsRetry() bool {
	return ResultCodeCategory(r.Code) == "retry"
}

// IsMalformed returns true for tem codes.
func (r TxResult) IsMalformed() bool {
	return ResultCodeCategory(r.Code) == "malformed"
}

// IsFailed returns true for tef codes.
func (r TxResult) IsFailed() bool {
	return ResultCodeCategory(r.Code) == "failure"
}

// ResultCodeCategory returns the category of a result code by its prefix.
func ResultCodeCategory(code string) string {
	if len(code) < 3 {
		return "unknown"
	}
	switch code[:3] {
	case "tes":
		return "success"
	case "tec":
		return "claimed"
	case "tef":
		return "failure"
	case "ter":
		return "retry"
	case "tem":
		return "malformed"
	default:
		return "unknown"
	}
}

func resultFromApply(res tx.ApplyResult) TxResult {
	return TxResult{
		Code:     res.Result.String(),
		Success:  res.Applied,
		Message:  res.Message,
		Hash:     res.Hash,
		Metadata: res.Metadata,
	}
}
