// Package services implements the song registry engine: validated,
// owner-gated mutations of entries and their permission records.
package services

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/songregistry/internal/common"
	"github.com/dmitrijs2005/songregistry/internal/dbx"
	"github.com/dmitrijs2005/songregistry/internal/server/ledger"
	"github.com/dmitrijs2005/songregistry/internal/server/models"
	"github.com/dmitrijs2005/songregistry/internal/server/repositories/repomanager"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/dmitrijs2005/songregistry/internal/server/services"

// RegistryService runs every registry operation one at a time. Mutations
// execute inside a single transaction so that a failed step leaves no trace.
type RegistryService struct {
	mu sync.Mutex

	db          *sql.DB
	repomanager repomanager.RepositoryManager
	heights     ledger.HeightSource
	tracer      trace.Tracer
	now         func() time.Time
}

// Option customises a RegistryService.
type Option func(*RegistryService)

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(s *RegistryService) { s.tracer = t }
}

// WithClock overrides the wall clock used to stamp snapshots.
func WithClock(now func() time.Time) Option {
	return func(s *RegistryService) { s.now = now }
}

func NewRegistryService(db *sql.DB, repomanager repomanager.RepositoryManager, heights ledger.HeightSource, opts ...Option) *RegistryService {
	s := &RegistryService{
		db:          db,
		repomanager: repomanager,
		heights:     heights,
		tracer:      otel.Tracer(tracerName),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RegistryService) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "registry."+op, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Create registers a new entry owned by caller and grants caller a
// permission record. It returns the new entry id.
func (s *RegistryService) Create(ctx context.Context, caller models.Principal, draft models.Draft) (id int64, err error) {
	ctx, span := s.startSpan(ctx, "create")
	defer func() { endSpan(span, err) }()

	if caller == "" {
		return 0, common.ErrorUnauthorized
	}
	if err := validateDraft(draft); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	height, err := s.heights.Height(ctx)
	if err != nil {
		return 0, err
	}

	id, err = dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (int64, error) {
		id, err := s.repomanager.Counter(tx).Next(ctx)
		if err != nil {
			return 0, err
		}

		entry := models.NewEntry(id, caller, height, draft)
		if err := s.repomanager.Entries(tx).Insert(ctx, &entry); err != nil {
			return 0, err
		}

		perm := models.Permission{EntryID: id, User: caller, Authorized: true}
		if err := s.repomanager.Permissions(tx).Insert(ctx, &perm); err != nil {
			return 0, err
		}
		return id, nil
	})
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int64("entry.id", id))
	return id, nil
}

// mutateOwned loads entry id, checks that caller owns it, and stores the
// record returned by change. Nothing is written if any step fails.
func (s *RegistryService) mutateOwned(ctx context.Context, caller models.Principal, id int64, change func(models.Entry) (models.Entry, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Entries(tx)

		current, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if current.Owner != caller {
			return common.ErrorUnauthorized
		}

		next, err := change(*current)
		if err != nil {
			return err
		}
		return repo.Set(ctx, &next)
	})
}

// TransferOwnership hands entry id to newOwner. Only the owner changes;
// permission records are left as they are.
func (s *RegistryService) TransferOwnership(ctx context.Context, caller models.Principal, id int64, newOwner models.Principal) (err error) {
	ctx, span := s.startSpan(ctx, "transfer_ownership", attribute.Int64("entry.id", id))
	defer func() { endSpan(span, err) }()

	return s.mutateOwned(ctx, caller, id, func(e models.Entry) (models.Entry, error) {
		if newOwner == "" {
			return e, &common.ValidationError{Field: "new_owner", Reason: "must not be empty"}
		}
		return e.WithOwner(newOwner), nil
	})
}

// UpdateDetails rewrites title, duration, genre and tags of entry id.
func (s *RegistryService) UpdateDetails(ctx context.Context, caller models.Principal, id int64, details models.Details) (err error) {
	ctx, span := s.startSpan(ctx, "update_details", attribute.Int64("entry.id", id))
	defer func() { endSpan(span, err) }()

	return s.mutateOwned(ctx, caller, id, func(e models.Entry) (models.Entry, error) {
		if err := validateDetails(details); err != nil {
			return e, err
		}
		return e.WithDetails(details), nil
	})
}

func (s *RegistryService) getEntry(ctx context.Context, op string, id int64) (entry *models.Entry, err error) {
	ctx, span := s.startSpan(ctx, op, attribute.Int64("entry.id", id))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repomanager.Entries(s.db).Get(ctx, id)
}

// GetDetails returns a copy of the whole entry.
func (s *RegistryService) GetDetails(ctx context.Context, id int64) (models.Entry, error) {
	e, err := s.getEntry(ctx, "get_details", id)
	if err != nil {
		return models.Entry{}, err
	}
	return *e, nil
}

func (s *RegistryService) GetOwner(ctx context.Context, id int64) (models.Principal, error) {
	e, err := s.getEntry(ctx, "get_owner", id)
	if err != nil {
		return "", err
	}
	return e.Owner, nil
}

func (s *RegistryService) GetGenre(ctx context.Context, id int64) (string, error) {
	e, err := s.getEntry(ctx, "get_genre", id)
	if err != nil {
		return "", err
	}
	return e.Genre, nil
}

func (s *RegistryService) GetTags(ctx context.Context, id int64) ([]string, error) {
	e, err := s.getEntry(ctx, "get_tags", id)
	if err != nil {
		return nil, err
	}
	return e.Tags, nil
}

func (s *RegistryService) GetArtist(ctx context.Context, id int64) (string, error) {
	e, err := s.getEntry(ctx, "get_artist", id)
	if err != nil {
		return "", err
	}
	return e.Artist, nil
}

// GetTotalCount returns how many entries have ever been created.
func (s *RegistryService) GetTotalCount(ctx context.Context) (n int64, err error) {
	ctx, span := s.startSpan(ctx, "get_total_count")
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repomanager.Counter(s.db).Current(ctx)
}

// GetUserPermission returns the stored flag for (id, user). A missing
// record is common.ErrorNotFound, never false.
func (s *RegistryService) GetUserPermission(ctx context.Context, id int64, user models.Principal) (ok bool, err error) {
	ctx, span := s.startSpan(ctx, "get_user_permission", attribute.Int64("entry.id", id))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repomanager.Permissions(s.db).Get(ctx, id, user)
	if err != nil {
		return false, err
	}
	return p.Authorized, nil
}

// Snapshot copies the counter, every entry and every permission record in
// one transaction.
func (s *RegistryService) Snapshot(ctx context.Context) (snap *models.Snapshot, err error) {
	ctx, span := s.startSpan(ctx, "snapshot")
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	return dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.Snapshot, error) {
		total, err := s.repomanager.Counter(tx).Current(ctx)
		if err != nil {
			return nil, err
		}
		entries, err := s.repomanager.Entries(tx).List(ctx)
		if err != nil {
			return nil, err
		}
		perms, err := s.repomanager.Permissions(tx).List(ctx)
		if err != nil {
			return nil, err
		}

		snap := &models.Snapshot{
			TakenAt:     s.now().UTC(),
			TotalCount:  total,
			Entries:     make([]models.Entry, 0, len(entries)),
			Permissions: make([]models.Permission, 0, len(perms)),
		}
		for _, e := range entries {
			snap.Entries = append(snap.Entries, *e)
		}
		for _, p := range perms {
			snap.Permissions = append(snap.Permissions, *p)
		}
		return snap, nil
	})
}
