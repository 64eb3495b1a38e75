package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/songregistry/internal/server/config"
	"github.com/dmitrijs2005/songregistry/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.StorageBackend = repomanager.SQLite
	c.DatabaseDSN = "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.LogLevel = "error"
	return c
}

func TestNewApp_SQLite(t *testing.T) {
	app, err := NewApp(context.Background(), sqliteConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	n, err := app.registry.GetTotalCount(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNewApp_Errors(t *testing.T) {
	c := sqliteConfig()
	c.StorageBackend = "oracle"
	_, err := NewApp(context.Background(), c)
	require.Error(t, err)

	c = sqliteConfig()
	c.BlockInterval = 0
	_, err = NewApp(context.Background(), c)
	require.Error(t, err)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	app, err := NewApp(context.Background(), sqliteConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		app.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}

	require.Error(t, app.db.PingContext(context.Background()), "db closed on exit")
}
