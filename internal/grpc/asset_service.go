package grpc

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/service"
)

// AssetServiceName is the fully qualified gRPC service name.
const AssetServiceName = "memeledger.AssetService"

// Full method names
const (
	AssetServiceGetAssetMethod   = "/" + AssetServiceName + "/GetAsset"
	AssetServiceGetAccountMethod = "/" + AssetServiceName + "/GetAccount"
	AssetServiceSubmitMethod     = "/" + AssetServiceName + "/Submit"
)

// GetAssetRequest asks for the record of one asset.
type GetAssetRequest struct {
	Name string `json:"name"`
}

// GetAssetResponse carries the asset record.
type GetAssetResponse struct {
	Asset *service.AssetInfo `json:"asset"`
}

// GetAccountRequest asks for an account and optionally its holdings.
type GetAccountRequest struct {
	Account  string `json:"account"`
	Holdings bool   `json:"holdings,omitempty"`
}

// GetAccountResponse carries the account.
type GetAccountResponse struct {
	Account *service.AccountInfo `json:"account"`
}

// SubmitRequest carries a transaction in its JSON form.
type SubmitRequest struct {
	TxJSON json.RawMessage `json:"tx_json"`
}

// SubmitResponse carries the engine's verdict.
type SubmitResponse struct {
	Result *service.SubmitResult `json:"result"`
}

// AssetServiceServer is the server API for AssetService.
type AssetServiceServer interface {
	GetAsset(context.Context, *GetAssetRequest) (*GetAssetResponse, error)
	GetAccount(context.Context, *GetAccountRequest) (*GetAccountResponse, error)
	Submit(context.Context, *SubmitRequest) (*SubmitResponse, error)
}

// RegisterAssetServiceServer registers srv on s.
func RegisterAssetServiceServer(s grpc.ServiceRegistrar, srv AssetServiceServer) {
	s.RegisterService(&assetServiceDesc, srv)
}

var assetServiceDesc = grpc.ServiceDesc{
	ServiceName: AssetServiceName,
	HandlerType: (*AssetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetAsset", Handler: getAssetHandler},
		{MethodName: "GetAccount", Handler: getAccountHandler},
		{MethodName: "Submit", Handler: submitHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "memeledger/asset_service",
}

func getAssetHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAssetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssetServiceServer).GetAsset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AssetServiceGetAssetMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssetServiceServer).GetAsset(ctx, req.(*GetAssetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getAccountHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssetServiceServer).GetAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AssetServiceGetAccountMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssetServiceServer).GetAccount(ctx, req.(*GetAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func submitHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssetServiceServer).Submit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AssetServiceSubmitMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssetServiceServer).Submit(ctx, req.(*SubmitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AssetServiceClient is the client API for AssetService.
type AssetServiceClient interface {
	GetAsset(ctx context.Context, in *GetAssetRequest, opts ...grpc.CallOption) (*GetAssetResponse, error)
	GetAccount(ctx context.Context, in *GetAccountRequest, opts ...grpc.CallOption) (*GetAccountResponse, error)
	Submit(ctx context.Context, in *SubmitRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
}

type assetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAssetServiceClient returns a client that speaks the JSON codec.
func NewAssetServiceClient(cc grpc.ClientConnInterface) AssetServiceClient {
	return &assetServiceClient{cc: cc}
}

func (c *assetServiceClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *assetServiceClient) GetAsset(ctx context.Context, in *GetAssetRequest, opts ...grpc.CallOption) (*GetAssetResponse, error) {
	out := new(GetAssetResponse)
	if err := c.invoke(ctx, AssetServiceGetAssetMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assetServiceClient) GetAccount(ctx context.Context, in *GetAccountRequest, opts ...grpc.CallOption) (*GetAccountResponse, error) {
	out := new(GetAccountResponse)
	if err := c.invoke(ctx, AssetServiceGetAccountMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assetServiceClient) Submit(ctx context.Context, in *SubmitRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	out := new(SubmitResponse)
	if err := c.invoke(ctx, AssetServiceSubmitMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
