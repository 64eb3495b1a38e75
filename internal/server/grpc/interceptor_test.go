package grpc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/songregistry/internal/logging"
	pb "github.com/dmitrijs2005/songregistry/internal/proto"
	"github.com/dmitrijs2005/songregistry/internal/server/auth"
	"github.com/dmitrijs2005/songregistry/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const secret = "secret"

type logLine struct {
	level string
	msg   string
	args  []any
}

type captureLogger struct {
	mu    sync.Mutex
	lines []logLine
}

func (c *captureLogger) add(level, msg string, args []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, logLine{level, msg, args})
}

func (c *captureLogger) Debug(_ context.Context, msg string, args ...any) { c.add("debug", msg, args) }
func (c *captureLogger) Info(_ context.Context, msg string, args ...any)  { c.add("info", msg, args) }
func (c *captureLogger) Warn(_ context.Context, msg string, args ...any)  { c.add("warn", msg, args) }
func (c *captureLogger) Error(_ context.Context, msg string, args ...any) { c.add("error", msg, args) }
func (c *captureLogger) With(...any) logging.Logger                       { return c }

func newTestServer(r Registry) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop(), r, secret)
}

func incoming(token string) context.Context {
	md := metadata.MD{}
	if token != "" {
		md.Set("access_token", token)
	}
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestAccessTokenInterceptor(t *testing.T) {
	s := newTestServer(nil)

	valid, err := auth.GenerateToken("alice", []byte(secret), time.Minute)
	require.NoError(t, err)
	foreign, err := auth.GenerateToken("alice", []byte("other"), time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		ctx        context.Context
		wantCode   codes.Code
		wantCaller models.Principal
	}{
		{"create without token", pb.Registry_Create_FullMethodName, incoming(""), codes.Unauthenticated, ""},
		{"create without metadata", pb.Registry_Create_FullMethodName, context.Background(), codes.Unauthenticated, ""},
		{"transfer with garbage", pb.Registry_TransferOwnership_FullMethodName, incoming("garbage"), codes.Unauthenticated, ""},
		{"update signed by someone else", pb.Registry_UpdateDetails_FullMethodName, incoming(foreign), codes.Unauthenticated, ""},
		{"create with token", pb.Registry_Create_FullMethodName, incoming(valid), codes.OK, "alice"},
		{"query needs no token", pb.Registry_GetOwner_FullMethodName, incoming(""), codes.OK, ""},
		{"query ignores token", pb.Registry_GetTotalCount_FullMethodName, incoming(valid), codes.OK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotCaller models.Principal
			called := false
			h := func(ctx context.Context, req any) (any, error) {
				called = true
				gotCaller = callerFromContext(ctx)
				return "ok", nil
			}

			_, err := s.accessTokenInterceptor(tt.ctx, nil, &grpc.UnaryServerInfo{FullMethod: tt.method}, h)
			assert.Equal(t, tt.wantCode, status.Code(err))
			assert.Equal(t, tt.wantCode == codes.OK, called)
			assert.Equal(t, tt.wantCaller, gotCaller)
		})
	}
}

func TestLoggingInterceptor(t *testing.T) {
	log := &captureLogger{}
	s := NewGRPCServer("127.0.0.1:0", log, nil, secret)
	info := &grpc.UnaryServerInfo{FullMethod: pb.Registry_GetOwner_FullMethodName}

	resp, err := s.loggingInterceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return "resp", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "resp", resp)

	_, err = s.loggingInterceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.Internal, "boom")
	})
	require.Error(t, err)

	_, err = s.loggingInterceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, errors.New("plain")
	})
	require.Error(t, err)

	require.Len(t, log.lines, 3)
	assert.Equal(t, "info", log.lines[0].level)
	assert.Contains(t, log.lines[0].args, pb.Registry_GetOwner_FullMethodName)
	assert.Contains(t, log.lines[0].args, "OK")
	assert.Equal(t, "error", log.lines[1].level)
	assert.Contains(t, log.lines[1].args, "Internal")
	// A non-status error reports as Unknown and is not an internal failure.
	assert.Equal(t, "info", log.lines[2].level)
	assert.Contains(t, log.lines[2].args, "Unknown")
}
