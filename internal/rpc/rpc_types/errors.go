package rpc_types

// RpcError represents an RPC error with code and message
type RpcError struct {
	Code        int    `json:"error_code"`
	ErrorString string `json:"error"`
	Type        string `json:"type"`
	Message     string `json:"error_message,omitempty"`
}

func (e RpcError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.ErrorString
}

// Error codes. The values shared with rippled keep their rippled numbers.
const (
	// Universal errors
	RpcUNKNOWN          = -1
	RpcJSON_RPC         = -32600
	RpcMETHOD_NOT_FOUND = -32601
	RpcINVALID_PARAMS   = -32602
	RpcINTERNAL         = -32603
	RpcPARSE_ERROR      = -32700

	// General purpose errors
	RpcMISSING_COMMAND  = 2
	RpcNO_PERMISSION    = 6
	RpcSHUT_DOWN        = 11
	RpcACT_NOT_FOUND    = 19
	RpcTXN_NOT_FOUND    = 24
	RpcNOT_ENABLED      = 31
	RpcINVALID_HASH     = 44
	RpcACT_MALFORMED    = 50
	RpcBAD_KEY_TYPE     = 76
	RpcOBJECT_NOT_FOUND = 92

	// Transaction submission errors
	RpcINVALID_TRANSACTION = 101
)

// NewRpcError builds an error whose type matches its error string.
func NewRpcError(code int, error, errorType, message string) *RpcError {
	return &RpcError{
		Code:        code,
		ErrorString: error,
		Type:        errorType,
		Message:     message,
	}
}

func RpcErrorInvalidParams(message string) *RpcError {
	return NewRpcError(RpcINVALID_PARAMS, "invalidParams", "invalidParams", message)
}

func RpcErrorMethodNotFound(method string) *RpcError {
	return NewRpcError(RpcMETHOD_NOT_FOUND, "unknownCmd", "unknownCmd", "Unknown method: "+method)
}

func RpcErrorMissingCommand() *RpcError {
	return NewRpcError(RpcMISSING_COMMAND, "missingCommand", "missingCommand", "Missing method field")
}

func RpcErrorJsonInvalid(message string) *RpcError {
	return NewRpcError(RpcPARSE_ERROR, "jsonInvalid", "jsonInvalid", message)
}

func RpcErrorNoPermission(message string) *RpcError {
	return NewRpcError(RpcNO_PERMISSION, "noPermission", "noPermission", message)
}

func RpcErrorActNotFound(message string) *RpcError {
	return NewRpcError(RpcACT_NOT_FOUND, "actNotFound", "actNotFound", message)
}

func RpcErrorActMalformed(message string) *RpcError {
	return NewRpcError(RpcACT_MALFORMED, "actMalformed", "actMalformed", message)
}

func RpcErrorTxnNotFound(message string) *RpcError {
	return NewRpcError(RpcTXN_NOT_FOUND, "txnNotFound", "txnNotFound", message)
}

func RpcErrorInvalidHash(message string) *RpcError {
	return NewRpcError(RpcINVALID_HASH, "invalidHash", "invalidHash", message)
}

func RpcErrorInternal(message string) *RpcError {
	return NewRpcError(RpcINTERNAL, "internal", "internal", message)
}

func RpcErrorShutDown(message string) *RpcError {
	return NewRpcError(RpcSHUT_DOWN, "shutDown", "shutDown", message)
}

func RpcErrorNotEnabled(feature string) *RpcError {
	return NewRpcError(RpcNOT_ENABLED, "notEnabled", "notEnabled", "Feature not enabled: "+feature)
}

func RpcErrorBadKeyType() *RpcError {
	return NewRpcError(RpcBAD_KEY_TYPE, "badKeyType", "badKeyType", "Invalid field 'key_type'.")
}

func RpcErrorInvalidTransaction(message string) *RpcError {
	return NewRpcError(RpcINVALID_TRANSACTION, "invalidTransaction", "invalidTransaction", message)
}

// RpcErrorObjectNotFound returns an error for object not found (matches rippled rpcOBJECT_NOT_FOUND)
func RpcErrorObjectNotFound(message string) *RpcError {
	return NewRpcError(RpcOBJECT_NOT_FOUND, "objectNotFound", "objectNotFound", message)
}

// RpcErrorMissingField returns an error for missing required field (matches rippled missing_field_error)
func RpcErrorMissingField(field string) *RpcError {
	return NewRpcError(RpcINVALID_PARAMS, "invalidParams", "invalidParams", "Missing field '"+field+"'.")
}

// RpcErrorInvalidField returns an error for invalid field value (matches rippled invalid_field_error)
func RpcErrorInvalidField(field string) *RpcError {
	return NewRpcError(RpcINVALID_PARAMS, "invalidParams", "invalidParams", "Invalid field '"+field+"'.")
}
