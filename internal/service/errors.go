package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/ordena/internal/inventory"
	"github.com/mmynk/ordena/internal/storage"
)

// storageError maps a storage failure to a Connect error.
func storageError(err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrNegativeQuantity):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func invalidArgument(err error) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, err)
}

// validationError returns InvalidArgument for form errors and Internal otherwise.
func validationError(err error) *connect.Error {
	if _, ok := inventory.AsFieldError(err); ok {
		return invalidArgument(err)
	}
	return connect.NewError(connect.CodeInternal, err)
}
