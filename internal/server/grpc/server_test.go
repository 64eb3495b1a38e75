package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/songregistry/internal/api"
	"github.com/dmitrijs2005/songregistry/internal/logging"
	pb "github.com/dmitrijs2005/songregistry/internal/proto"
	"github.com/dmitrijs2005/songregistry/internal/server/auth"
	"github.com/dmitrijs2005/songregistry/internal/server/ledger"
	"github.com/dmitrijs2005/songregistry/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/songregistry/internal/server/repositories/sqltest"
	"github.com/dmitrijs2005/songregistry/internal/server/services"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/testing/protocmp"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := newTestServer(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop(), nil, secret)
	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}

// startRegistry serves a real registry over an in-memory connection.
func startRegistry(t *testing.T) *grpc.ClientConn {
	t.Helper()

	registry := services.NewRegistryService(sqltest.NewDB(t), &repomanager.SQLiteRepositoryManager{}, ledger.Static(10))
	srv := newTestServer(registry)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.serve(ctx, lis)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := api.Dial("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func token(t *testing.T, principal string) string {
	t.Helper()
	tok, err := auth.GenerateToken(principal, []byte(secret), time.Minute)
	require.NoError(t, err)
	return tok
}

func TestEndToEnd_Scenario(t *testing.T) {
	c := api.NewClient(startRegistry(t))
	base := context.Background()
	asAlice := api.WithAccessToken(base, token(t, "alice"))
	asBob := api.WithAccessToken(base, token(t, "bob"))

	_, err := c.Create(base, &pb.CreateRequest{Title: "Song A", Artist: "Artist A", Duration: 200, Genre: "Rock", Tags: []string{"live"}})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	id, err := c.Create(asAlice, &pb.CreateRequest{Title: "Song A", Artist: "Artist A", Duration: 200, Genre: "Rock", Tags: []string{"live"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	total, err := c.GetTotalCount(base)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	owner, err := c.GetOwner(base, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", owner)

	ok, err := c.GetUserPermission(base, id, "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = c.GetUserPermission(base, id, "carol")
	assert.Equal(t, codes.NotFound, status.Code(err))

	err = c.TransferOwnership(asBob, id, "bob")
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	require.NoError(t, c.TransferOwnership(asAlice, id, "bob"))
	owner, err = c.GetOwner(base, id)
	require.NoError(t, err)
	assert.Equal(t, "bob", owner)

	err = c.TransferOwnership(asAlice, id, "carol")
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	err = c.UpdateDetails(asBob, &pb.UpdateDetailsRequest{Id: id, Title: "Song A", Duration: 10000, Genre: "Rock", Tags: []string{"live"}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	require.NoError(t, c.UpdateDetails(asBob, &pb.UpdateDetailsRequest{Id: id, Title: "Song A", Duration: 200, Genre: "Jazz", Tags: []string{"live"}}))

	e, err := c.GetDetails(base, id)
	require.NoError(t, err)
	want := &pb.Entry{Id: 1, Title: "Song A", Artist: "Artist A", Owner: "bob", Duration: 200, CreationHeight: 10, Genre: "Jazz", Tags: []string{"live"}}
	if diff := cmp.Diff(want, e, protocmp.Transform()); diff != "" {
		t.Errorf("GetDetails mismatch (-want +got):\n%s", diff)
	}

	genre, err := c.GetGenre(base, id)
	require.NoError(t, err)
	assert.Equal(t, "Jazz", genre)
	artist, err := c.GetArtist(base, id)
	require.NoError(t, err)
	assert.Equal(t, "Artist A", artist)
	tags, err := c.GetTags(base, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"live"}, tags)

	_, err = c.GetDetails(base, 42)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestEndToEnd_Health(t *testing.T) {
	conn := startRegistry(t)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.Registry_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

func TestEndToEnd_TracesBothSides(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	c := api.NewClient(startRegistry(t))
	_, err := c.GetTotalCount(context.Background())
	require.NoError(t, err)

	// The server span ends after the status is written, possibly after
	// the client has returned.
	ended := func(kind trace.SpanKind) string {
		for _, s := range rec.Ended() {
			if s.SpanKind() == kind {
				return s.Name()
			}
		}
		return ""
	}
	assert.Equal(t, "songregistry.v1.Registry/GetTotalCount", ended(trace.SpanKindClient))
	assert.Eventually(t, func() bool {
		return ended(trace.SpanKindServer) == "songregistry.v1.Registry/GetTotalCount"
	}, time.Second, 10*time.Millisecond)
}
