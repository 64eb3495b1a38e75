package grpc

import (
	"context"

	"github.com/dmitrijs2005/songregistry/internal/logging"
	pb "github.com/dmitrijs2005/songregistry/internal/proto"
	"github.com/dmitrijs2005/songregistry/internal/server/models"
)

type handler struct {
	pb.UnimplementedRegistryServer

	registry Registry
	logger   logging.Logger
}

// fail logs err at debug level and maps it to a status.
func (h *handler) fail(ctx context.Context, op string, err error) error {
	h.logger.Debug(ctx, op+" failed", "error", err)
	return toStatus(err)
}

func (h *handler) Create(ctx context.Context, req *pb.CreateRequest) (*pb.CreateResponse, error) {
	id, err := h.registry.Create(ctx, callerFromContext(ctx), models.Draft{
		Title:    req.Title,
		Artist:   req.Artist,
		Duration: req.Duration,
		Genre:    req.Genre,
		Tags:     req.Tags,
	})
	if err != nil {
		return nil, h.fail(ctx, "create", err)
	}

	h.logger.Info(ctx, "Entry created", "id", id)
	return &pb.CreateResponse{Id: id}, nil
}

func (h *handler) TransferOwnership(ctx context.Context, req *pb.TransferOwnershipRequest) (*pb.Empty, error) {
	err := h.registry.TransferOwnership(ctx, callerFromContext(ctx), req.Id, models.Principal(req.NewOwner))
	if err != nil {
		return nil, h.fail(ctx, "transfer", err)
	}

	h.logger.Info(ctx, "Ownership transferred", "id", req.Id)
	return &pb.Empty{}, nil
}

func (h *handler) UpdateDetails(ctx context.Context, req *pb.UpdateDetailsRequest) (*pb.Empty, error) {
	err := h.registry.UpdateDetails(ctx, callerFromContext(ctx), req.Id, models.Details{
		Title:    req.Title,
		Duration: req.Duration,
		Genre:    req.Genre,
		Tags:     req.Tags,
	})
	if err != nil {
		return nil, h.fail(ctx, "update", err)
	}
	return &pb.Empty{}, nil
}

func (h *handler) GetDetails(ctx context.Context, req *pb.EntryRequest) (*pb.Entry, error) {
	e, err := h.registry.GetDetails(ctx, req.Id)
	if err != nil {
		return nil, h.fail(ctx, "get details", err)
	}
	return &pb.Entry{
		Id:             e.ID,
		Title:          e.Title,
		Artist:         e.Artist,
		Owner:          string(e.Owner),
		Duration:       e.Duration,
		CreationHeight: e.CreationHeight,
		Genre:          e.Genre,
		Tags:           e.Tags,
	}, nil
}

func (h *handler) GetOwner(ctx context.Context, req *pb.EntryRequest) (*pb.OwnerResponse, error) {
	owner, err := h.registry.GetOwner(ctx, req.Id)
	if err != nil {
		return nil, h.fail(ctx, "get owner", err)
	}
	return &pb.OwnerResponse{Owner: string(owner)}, nil
}

func (h *handler) GetGenre(ctx context.Context, req *pb.EntryRequest) (*pb.GenreResponse, error) {
	genre, err := h.registry.GetGenre(ctx, req.Id)
	if err != nil {
		return nil, h.fail(ctx, "get genre", err)
	}
	return &pb.GenreResponse{Genre: genre}, nil
}

func (h *handler) GetTags(ctx context.Context, req *pb.EntryRequest) (*pb.TagsResponse, error) {
	tags, err := h.registry.GetTags(ctx, req.Id)
	if err != nil {
		return nil, h.fail(ctx, "get tags", err)
	}
	return &pb.TagsResponse{Tags: tags}, nil
}

func (h *handler) GetArtist(ctx context.Context, req *pb.EntryRequest) (*pb.ArtistResponse, error) {
	artist, err := h.registry.GetArtist(ctx, req.Id)
	if err != nil {
		return nil, h.fail(ctx, "get artist", err)
	}
	return &pb.ArtistResponse{Artist: artist}, nil
}

func (h *handler) GetTotalCount(ctx context.Context, _ *pb.Empty) (*pb.TotalCountResponse, error) {
	n, err := h.registry.GetTotalCount(ctx)
	if err != nil {
		return nil, h.fail(ctx, "get total count", err)
	}
	return &pb.TotalCountResponse{TotalCount: n}, nil
}

func (h *handler) GetUserPermission(ctx context.Context, req *pb.UserPermissionRequest) (*pb.UserPermissionResponse, error) {
	ok, err := h.registry.GetUserPermission(ctx, req.Id, models.Principal(req.User))
	if err != nil {
		return nil, h.fail(ctx, "get user permission", err)
	}
	return &pb.UserPermissionResponse{Authorized: ok}, nil
}
