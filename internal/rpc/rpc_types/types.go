package rpc_types

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/LeJamon/goMemeLedger/internal/storage/relationaldb"
)

// Role-based access control matching rippled
type Role int

const (
	RoleGuest Role = iota
	RoleUser
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleGuest:
		return "guest"
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// RPC Context contains request-specific information
type RpcContext struct {
	Context  context.Context
	Role     Role
	IsAdmin  bool
	ClientIP string
}

// Method handler interface - all RPC methods implement this
type MethodHandler interface {
	Handle(ctx *RpcContext, params json.RawMessage) (interface{}, *RpcError)
	RequiredRole() Role
}

// Method registry for dynamic method registration
type MethodRegistry struct {
	methods map[string]MethodHandler
}

func NewMethodRegistry() *MethodRegistry {
	return &MethodRegistry{
		methods: make(map[string]MethodHandler),
	}
}

func (r *MethodRegistry) Register(name string, handler MethodHandler) {
	r.methods[name] = handler
}

func (r *MethodRegistry) Get(name string) (MethodHandler, bool) {
	handler, exists := r.methods[name]
	return handler, exists
}

// List returns the registered method names in sorted order.
func (r *MethodRegistry) List() []string {
	methods := make([]string, 0, len(r.methods))
	for name := range r.methods {
		methods = append(methods, name)
	}
	sort.Strings(methods)
	return methods
}

// Uint64 unmarshals from either a JSON number or a decimal string.
// Quantities above 2^53 only survive a round trip through JSON as strings.
type Uint64 uint64

// UnmarshalJSON implements custom unmarshaling for Uint64
func (u *Uint64) UnmarshalJSON(data []byte) error {
	var strVal string
	if err := json.Unmarshal(data, &strVal); err == nil {
		v, err := strconv.ParseUint(strVal, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q", strVal)
		}
		*u = Uint64(v)
		return nil
	}

	var numVal uint64
	if err := json.Unmarshal(data, &numVal); err == nil {
		*u = Uint64(numVal)
		return nil
	}

	return fmt.Errorf("must be a number or string, got: %s", string(data))
}

// MarshalJSON writes the value as a decimal string.
func (u Uint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(u), 10))
}

// PaginationParams are the paging fields shared by history methods.
type PaginationParams struct {
	Limit   uint32  `json:"limit,omitempty"`
	Marker  *uint64 `json:"marker,omitempty"`
	Forward bool    `json:"forward,omitempty"`
}

// PageOptions converts to the history query options. The history layer
// clamps the limit.
func (p PaginationParams) PageOptions() relationaldb.PageOptions {
	return relationaldb.PageOptions{
		Limit:   p.Limit,
		Marker:  p.Marker,
		Forward: p.Forward,
	}
}
