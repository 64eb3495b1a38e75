package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/songregistry/internal/common"
	pb "github.com/dmitrijs2005/songregistry/internal/proto"
	"github.com/dmitrijs2005/songregistry/internal/server/auth"
	"github.com/dmitrijs2005/songregistry/internal/server/models"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const callerKey ctxKey = "caller"

// Methods that act on behalf of an authenticated caller.
var authenticatedMethods = map[string]bool{
	pb.Registry_Create_FullMethodName:            true,
	pb.Registry_TransferOwnership_FullMethodName: true,
	pb.Registry_UpdateDetails_FullMethodName:     true,
}

func callerFromContext(ctx context.Context) models.Principal {
	p, _ := ctx.Value(callerKey).(models.Principal)
	return p
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !authenticatedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	principal, err := auth.PrincipalFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = context.WithValue(ctx, callerKey, models.Principal(principal))
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	requestID := uuid.NewString()

	resp, err := handler(ctx, req)

	args := []any{
		"method", info.FullMethod,
		"request_id", requestID,
		"code", status.Code(err).String(),
		"elapsed", time.Since(start),
	}
	if err != nil && status.Code(err) == codes.Internal {
		s.logger.Error(ctx, "call failed", append(args, "error", err)...)
	} else {
		s.logger.Info(ctx, "call", args...)
	}
	return resp, err
}
