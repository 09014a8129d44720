package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseURL string // WAVEPLAN_DATABASE_URL (required)
	HTTPAddr    string // WAVEPLAN_HTTP_ADDR (default ":8080")
	NATSURL     string // WAVEPLAN_NATS_URL (optional, empty = no events)
	AuthToken   string // WAVEPLAN_AUTH_TOKEN (optional, empty = auth disabled)

	// Planning defaults
	DefaultCapacity int // WAVEPLAN_DEFAULT_CAPACITY (default 3)

	// Sync settings
	SyncInterval   time.Duration // WAVEPLAN_SYNC_INTERVAL (default 3m; 0 = disabled)
	SyncS3Bucket   string        // WAVEPLAN_SYNC_S3_BUCKET (enables S3 when set)
	SyncS3Endpoint string        // WAVEPLAN_SYNC_S3_ENDPOINT (custom endpoint for MinIO)
	SyncS3Region   string        // WAVEPLAN_SYNC_S3_REGION (default "us-east-1")
	SyncS3Key      string        // WAVEPLAN_SYNC_S3_KEY (default "waveplan/export.jsonl")
	SyncGitRepo    string        // WAVEPLAN_SYNC_GIT_REPO (enables git when set; path to clone)
	SyncGitFile    string        // WAVEPLAN_SYNC_GIT_FILE (default "waveplan.jsonl")
	SyncGitBranch  string        // WAVEPLAN_SYNC_GIT_BRANCH (default "main")
}

func Load() (*Config, error) {
	c := &Config{
		DatabaseURL:    os.Getenv("WAVEPLAN_DATABASE_URL"),
		HTTPAddr:       envOrDefault("WAVEPLAN_HTTP_ADDR", ":8080"),
		NATSURL:        os.Getenv("WAVEPLAN_NATS_URL"),
		AuthToken:      os.Getenv("WAVEPLAN_AUTH_TOKEN"),
		SyncS3Bucket:   os.Getenv("WAVEPLAN_SYNC_S3_BUCKET"),
		SyncS3Endpoint: os.Getenv("WAVEPLAN_SYNC_S3_ENDPOINT"),
		SyncS3Region:   envOrDefault("WAVEPLAN_SYNC_S3_REGION", "us-east-1"),
		SyncS3Key:      envOrDefault("WAVEPLAN_SYNC_S3_KEY", "waveplan/export.jsonl"),
		SyncGitRepo:    os.Getenv("WAVEPLAN_SYNC_GIT_REPO"),
		SyncGitFile:    envOrDefault("WAVEPLAN_SYNC_GIT_FILE", "waveplan.jsonl"),
		SyncGitBranch:  envOrDefault("WAVEPLAN_SYNC_GIT_BRANCH", "main"),
	}
	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("WAVEPLAN_DATABASE_URL is required")
	}

	capStr := envOrDefault("WAVEPLAN_DEFAULT_CAPACITY", "3")
	n, err := strconv.Atoi(capStr)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("WAVEPLAN_DEFAULT_CAPACITY: must be a positive integer, got %q", capStr)
	}
	c.DefaultCapacity = n

	intervalStr := envOrDefault("WAVEPLAN_SYNC_INTERVAL", "3m")
	if intervalStr != "" {
		d, err := time.ParseDuration(intervalStr)
		if err != nil {
			return nil, fmt.Errorf("WAVEPLAN_SYNC_INTERVAL: %w", err)
		}
		c.SyncInterval = d
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
