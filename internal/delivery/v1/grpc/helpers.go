package grpc

import (
	"errors"

	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func GRPCErrorResponse(err error) error {
	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return status.Error(codes.NotFound, e.ErrProductNotFound.Error())
	case errors.Is(err, e.ErrStatusBadRequest):
		return status.Error(codes.InvalidArgument, e.ErrStatusBadRequest.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}
