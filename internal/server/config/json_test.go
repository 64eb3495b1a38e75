package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON(t *testing.T) {
	t.Run("loads every field", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"endpoint_addr_grpc":             "www.example:9000",
			"storage_backend":                "sqlite",
			"database_dsn":                   "registry.db",
			"secret_key":                     "my_secret_key",
			"access_token_validity_duration": "1m",
			"log_level":                      "debug",
			"ledger_genesis":                 "2025-06-01T00:00:00Z",
			"block_interval":                 "30s",
			"s3_root_user":                   "user",
			"s3_root_password":               "password",
			"s3_bucket":                      "bucket",
			"s3_region":                      "region",
			"s3_base_endpoint":               "base_endpoint",
			"snapshot_interval":              int64(2 * time.Hour),
			"otel_endpoint":                  "http://otel:4318",
		})

		cfg := &Config{}
		require.NoError(t, parseJSON(cfg, []string{"-config", path}))

		assert.Equal(t, Config{
			EndpointAddrGRPC:            "www.example:9000",
			StorageBackend:              "sqlite",
			DatabaseDSN:                 "registry.db",
			SecretKey:                   "my_secret_key",
			AccessTokenValidityDuration: time.Minute,
			LogLevel:                    "debug",
			LedgerGenesis:               time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			BlockInterval:               30 * time.Second,
			S3RootUser:                  "user",
			S3RootPassword:              "password",
			S3Bucket:                    "bucket",
			S3Region:                    "region",
			S3BaseEndpoint:              "base_endpoint",
			SnapshotInterval:            2 * time.Hour,
			OTelEndpoint:                "http://otel:4318",
		}, *cfg)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"log_level": "warn"})

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJSON(cfg, []string{"-c", path}))

		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
		assert.Equal(t, 10*time.Minute, cfg.BlockInterval)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{EndpointAddrGRPC: "defaults:1234"}
		require.NoError(t, parseJSON(cfg, []string{"-a", "x"}))
		assert.Equal(t, "defaults:1234", cfg.EndpointAddrGRPC)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Error(t, parseJSON(&Config{}, []string{"-c", bad}))
	})

	t.Run("invalid duration → error", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"block_interval": true})
		require.Error(t, parseJSON(&Config{}, []string{"-c", path}))
	})
}
