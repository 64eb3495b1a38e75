package grpc

import (
	"errors"

	"github.com/dmitrijs2005/songregistry/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrorNotFound, codes.NotFound},
	{common.ErrorDuplicateKey, codes.AlreadyExists},
	{common.ErrorInvalidInput, codes.InvalidArgument},
	{common.ErrorUnauthorized, codes.PermissionDenied},
	{common.ErrorAccessDenied, codes.PermissionDenied},
	{common.ErrorAdminOnly, codes.PermissionDenied},
	{common.ErrorRestricted, codes.PermissionDenied},
	{common.ErrorDuplicate, codes.AlreadyExists},
}

// toStatus converts an engine error into a gRPC status error. Unknown
// errors, and common.ErrorInternal itself, become codes.Internal without
// leaking their text.
func toStatus(err error) error {
	for _, m := range errorCodes {
		if errors.Is(err, m.err) {
			return status.Error(m.code, err.Error())
		}
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
