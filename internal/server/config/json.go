package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/songregistry/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file. Every field is
// optional; absent fields leave the current value untouched.
type JsonConfig struct {
	EndpointAddrGRPC            *string    `json:"endpoint_addr_grpc"`
	StorageBackend              *string    `json:"storage_backend"`
	DatabaseDSN                 *string    `json:"database_dsn"`
	SecretKey                   *string    `json:"secret_key"`
	AccessTokenValidityDuration *Duration  `json:"access_token_validity_duration"`
	LogLevel                    *string    `json:"log_level"`
	LedgerGenesis               *time.Time `json:"ledger_genesis"`
	BlockInterval               *Duration  `json:"block_interval"`
	S3RootUser                  *string    `json:"s3_root_user"`
	S3RootPassword              *string    `json:"s3_root_password"`
	S3Bucket                    *string    `json:"s3_bucket"`
	S3Region                    *string    `json:"s3_region"`
	S3BaseEndpoint              *string    `json:"s3_base_endpoint"`
	SnapshotInterval            *Duration  `json:"snapshot_interval"`
	OTelEndpoint                *string    `json:"otel_endpoint"`
}

// parseJSON overlays values from the file named by -c/-config, if any.
func parseJSON(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.StorageBackend, c.StorageBackend)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setString(&config.LogLevel, c.LogLevel)
	if c.LedgerGenesis != nil {
		config.LedgerGenesis = *c.LedgerGenesis
	}
	setDuration(&config.BlockInterval, c.BlockInterval)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setDuration(&config.SnapshotInterval, c.SnapshotInterval)
	setString(&config.OTelEndpoint, c.OTelEndpoint)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
