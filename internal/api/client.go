// Package api is a typed client for the songregistry.v1.Registry gRPC
// service.
package api

import (
	"context"

	"github.com/dmitrijs2005/songregistry/internal/common"
	pb "github.com/dmitrijs2005/songregistry/internal/proto"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// Client unwraps registry responses into plain values.
type Client struct {
	client pb.RegistryClient
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{client: pb.NewRegistryClient(cc)}
}

// Dial creates a traced client connection to target. opts are applied
// after the tracing stats handler.
func Dial(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithStatsHandler(otelgrpc.NewClientHandler())}, opts...)
	return grpc.NewClient(target, opts...)
}

// WithAccessToken attaches the caller's token to outgoing calls made with ctx.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)
}

func (c *Client) Create(ctx context.Context, in *pb.CreateRequest, opts ...grpc.CallOption) (int64, error) {
	resp, err := c.client.Create(ctx, in, opts...)
	if err != nil {
		return 0, err
	}
	return resp.GetId(), nil
}

func (c *Client) TransferOwnership(ctx context.Context, id int64, newOwner string, opts ...grpc.CallOption) error {
	_, err := c.client.TransferOwnership(ctx, &pb.TransferOwnershipRequest{Id: id, NewOwner: newOwner}, opts...)
	return err
}

func (c *Client) UpdateDetails(ctx context.Context, in *pb.UpdateDetailsRequest, opts ...grpc.CallOption) error {
	_, err := c.client.UpdateDetails(ctx, in, opts...)
	return err
}

func (c *Client) GetDetails(ctx context.Context, id int64, opts ...grpc.CallOption) (*pb.Entry, error) {
	return c.client.GetDetails(ctx, &pb.EntryRequest{Id: id}, opts...)
}

func (c *Client) GetOwner(ctx context.Context, id int64, opts ...grpc.CallOption) (string, error) {
	resp, err := c.client.GetOwner(ctx, &pb.EntryRequest{Id: id}, opts...)
	if err != nil {
		return "", err
	}
	return resp.GetOwner(), nil
}

func (c *Client) GetGenre(ctx context.Context, id int64, opts ...grpc.CallOption) (string, error) {
	resp, err := c.client.GetGenre(ctx, &pb.EntryRequest{Id: id}, opts...)
	if err != nil {
		return "", err
	}
	return resp.GetGenre(), nil
}

func (c *Client) GetTags(ctx context.Context, id int64, opts ...grpc.CallOption) ([]string, error) {
	resp, err := c.client.GetTags(ctx, &pb.EntryRequest{Id: id}, opts...)
	if err != nil {
		return nil, err
	}
	return resp.GetTags(), nil
}

func (c *Client) GetArtist(ctx context.Context, id int64, opts ...grpc.CallOption) (string, error) {
	resp, err := c.client.GetArtist(ctx, &pb.EntryRequest{Id: id}, opts...)
	if err != nil {
		return "", err
	}
	return resp.GetArtist(), nil
}

func (c *Client) GetTotalCount(ctx context.Context, opts ...grpc.CallOption) (int64, error) {
	resp, err := c.client.GetTotalCount(ctx, &pb.Empty{}, opts...)
	if err != nil {
		return 0, err
	}
	return resp.GetTotalCount(), nil
}

func (c *Client) GetUserPermission(ctx context.Context, id int64, user string, opts ...grpc.CallOption) (bool, error) {
	resp, err := c.client.GetUserPermission(ctx, &pb.UserPermissionRequest{Id: id, User: user}, opts...)
	if err != nil {
		return false, err
	}
	return resp.GetAuthorized(), nil
}
