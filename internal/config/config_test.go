package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_TYPE", "memory")
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("DB_ENDPOINT", "db.internal")
	t.Setenv("AWS_S3_BUCKET_NAME", "covers")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "memory", cfg.DatabaseType)
	assert.Equal(t, "memory", cfg.StorageBackend)
	assert.Equal(t, "db.internal", cfg.DB.Endpoint)
	assert.Equal(t, "covers", cfg.S3.Bucket)
	// untouched defaults
	assert.Equal(t, "eu-west-1", cfg.S3.Region)
	assert.Equal(t, "postgres", cfg.DB.Username)
	assert.Equal(t, "static", cfg.DB.AuthMode)
}

func TestValidate(t *testing.T) {
	cfg := Config{DatabaseType: "postgres", StorageBackend: "s3", DB: DBConfig{AuthMode: "static"}}
	assert.NoError(t, cfg.Validate())

	cfg.DatabaseType = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg.DatabaseType = "memory"
	cfg.StorageBackend = "fs"
	assert.Error(t, cfg.Validate())

	cfg.StorageBackend = "memory"
	cfg.DB.AuthMode = "kerberos"
	assert.Error(t, cfg.Validate())
}

func TestDBConfigURL(t *testing.T) {
	cfg := DBConfig{
		Endpoint: "db.example.com",
		Port:     5432,
		Username: "postgres",
		Name:     "catalog",
	}

	assert.Equal(t, "postgres://postgres@db.example.com:5432/catalog", cfg.URL())
	assert.Equal(t, "db.example.com:5432", cfg.Addr())
}
