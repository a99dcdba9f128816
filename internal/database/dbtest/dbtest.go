// Package dbtest provides in-memory SQLite databases migrated with the production schema.
package dbtest

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/team-Roy/prototype-sub000/internal/database"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"github.com/team-Roy/prototype-sub000/internal/notify"
	"github.com/team-Roy/prototype-sub000/internal/setup/config"
	"github.com/team-Roy/prototype-sub000/internal/setup/telemetry"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"go.uber.org/zap"
)

// Fixture is a migrated database with fully wired services.
type Fixture struct {
	Client     database.Client
	DB         *bun.DB
	Notifier   *RecordingNotifier
	Dispatcher *notify.Dispatcher
	Registry   *prometheus.Registry
	Metrics    *telemetry.Metrics
}

// Option adjusts the fixture before the services are built.
type Option func(*database.Options)

// WithEngine overrides the scoring configuration.
func WithEngine(engine config.Engine) Option {
	return func(opts *database.Options) {
		opts.Engine = engine
	}
}

// New opens a private in-memory database, runs every migration and wires the services.
func New(t *testing.T, options ...Option) *Fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and serializes writers
	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	recorder := &RecordingNotifier{}
	dispatcher := notify.NewDispatcher(recorder, zap.NewNop())
	registry := prometheus.NewRegistry()

	opts := database.Options{
		Engine:     config.DefaultEngine(),
		Dispatcher: dispatcher,
		Metrics:    telemetry.NewMetrics(registry),
	}
	for _, option := range options {
		option(&opts)
	}

	client, err := database.NewFromDB(t.Context(), db, zap.NewNop(), true, opts)
	require.NoError(t, err)

	return &Fixture{
		Client:     client,
		DB:         db,
		Notifier:   recorder,
		Dispatcher: dispatcher,
		Registry:   registry,
		Metrics:    opts.Metrics,
	}
}

// Community inserts a lounge.
func (f *Fixture) Community(t *testing.T, name string) *types.Community {
	t.Helper()

	community := &types.Community{Name: name, CreatedAt: time.Now().UTC()}
	_, err := f.DB.NewInsert().Model(community).Exec(context.Background())
	require.NoError(t, err)
	require.NotZero(t, community.ID)

	return community
}

// Post inserts a live post.
func (f *Fixture) Post(t *testing.T, communityID, authorID uint64) types.TargetRef {
	t.Helper()

	post := &types.Post{Target: types.Target{
		CommunityID: communityID,
		AuthorID:    authorID,
		CreatedAt:   time.Now().UTC(),
	}}
	_, err := f.DB.NewInsert().Model(post).Exec(context.Background())
	require.NoError(t, err)
	require.NotZero(t, post.ID)

	return types.TargetRef{Type: enum.TargetTypePost, ID: post.ID}
}

// Comment inserts a live comment on a post.
func (f *Fixture) Comment(t *testing.T, postID, communityID, authorID uint64) types.TargetRef {
	t.Helper()

	comment := &types.Comment{
		Target: types.Target{
			CommunityID: communityID,
			AuthorID:    authorID,
			CreatedAt:   time.Now().UTC(),
		},
		PostID: postID,
	}
	_, err := f.DB.NewInsert().Model(comment).Exec(context.Background())
	require.NoError(t, err)
	require.NotZero(t, comment.ID)

	return types.TargetRef{Type: enum.TargetTypeComment, ID: comment.ID}
}

// SoftDeletePost flags a post as deleted the way the content service does.
func (f *Fixture) SoftDeletePost(t *testing.T, id uint64) {
	t.Helper()

	_, err := f.DB.NewUpdate().Model((*types.Post)(nil)).
		Set("is_deleted = ?", true).
		Where("id = ?", id).
		Exec(context.Background())
	require.NoError(t, err)
}

// RecordingNotifier keeps every notification it receives.
type RecordingNotifier struct {
	mu   sync.Mutex
	sent []*notify.Notification
}

// Notify implements notify.Notifier.
func (r *RecordingNotifier) Notify(_ context.Context, n *notify.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sent = append(r.sent, n)
	return nil
}

// Sent returns a copy of the received notifications.
func (r *RecordingNotifier) Sent() []*notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*notify.Notification(nil), r.sent...)
}
