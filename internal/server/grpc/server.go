// Package grpc exposes the registry over gRPC: request handlers, the
// access-token and logging interceptors, and the server lifecycle.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/songregistry/internal/logging"
	pb "github.com/dmitrijs2005/songregistry/internal/proto"
	"github.com/dmitrijs2005/songregistry/internal/server/models"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Registry is the engine surface the transport calls into.
type Registry interface {
	Create(ctx context.Context, caller models.Principal, draft models.Draft) (int64, error)
	TransferOwnership(ctx context.Context, caller models.Principal, id int64, newOwner models.Principal) error
	UpdateDetails(ctx context.Context, caller models.Principal, id int64, details models.Details) error
	GetDetails(ctx context.Context, id int64) (models.Entry, error)
	GetOwner(ctx context.Context, id int64) (models.Principal, error)
	GetGenre(ctx context.Context, id int64) (string, error)
	GetTags(ctx context.Context, id int64) ([]string, error)
	GetArtist(ctx context.Context, id int64) (string, error)
	GetTotalCount(ctx context.Context) (int64, error)
	GetUserPermission(ctx context.Context, id int64, user models.Principal) (bool, error)
}

type GRPCServer struct {
	address   string
	registry  Registry
	logger    logging.Logger
	jwtSecret []byte
	health    *health.Server
}

func NewGRPCServer(address string, l logging.Logger, registry Registry, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   address,
		logger:    l.With("module", "grpc_server"),
		registry:  registry,
		jwtSecret: []byte(secretKey),
		health:    health.NewServer(),
	}
}

// newServer builds a grpc.Server with the registry and health services
// registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	)

	pb.RegisterRegistryServer(srv, &handler{registry: s.registry, logger: s.logger})
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(pb.Registry_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
