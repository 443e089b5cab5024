package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/service"
	"github.com/LeJamon/goMemeLedger/internal/core/tx"
)

// GetAsset returns the record of an asset.
func (s *Server) GetAsset(ctx context.Context, req *GetAssetRequest) (*GetAssetResponse, error) {
	if req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	asset, err := s.ledgerService.GetAsset(ctx, req.Name)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &GetAssetResponse{Asset: asset}, nil
}

// GetAccount returns an account and, on request, its holdings.
func (s *Server) GetAccount(ctx context.Context, req *GetAccountRequest) (*GetAccountResponse, error) {
	if req.Account == "" {
		return nil, status.Error(codes.InvalidArgument, "account is required")
	}
	account, err := s.ledgerService.GetAccount(ctx, req.Account, req.Holdings)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &GetAccountResponse{Account: account}, nil
}

// Submit applies a transaction. A transaction the engine rejects is
// reported in the result, not as a gRPC error.
func (s *Server) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResponse, error) {
	if len(req.TxJSON) == 0 {
		return nil, status.Error(codes.InvalidArgument, "tx_json is required")
	}
	transaction, err := tx.FromJSON(req.TxJSON)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid transaction: %v", err)
	}
	if transaction.TxType().IsAdmin() && !s.config.Admin {
		return nil, status.Error(codes.PermissionDenied, "administrative transactions are disabled")
	}

	result, err := s.ledgerService.Submit(ctx, transaction)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &SubmitResponse{Result: result}, nil
}

// statusFromError maps a ledger service error to a gRPC status.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, tx.ErrInvalidAccount):
		return status.Error(codes.InvalidArgument, err.Error())
	case service.IsNotFound(err):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrFundingDisabled):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, service.ErrHistoryUnavailable):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, service.ErrClosed):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
