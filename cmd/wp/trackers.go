package main

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// TrackersConfig holds all named tracker profiles and tracks which one is
// active.
type TrackersConfig struct {
	Active   string             `toml:"active"`
	Trackers map[string]Tracker `toml:"trackers"`
}

// Tracker is a named upstream profile: where snapshots come from and which
// waveplan server analyzes them.
type Tracker struct {
	// Snapshot source. Exactly one of Bin or ExportURL is used; Bin wins.
	Bin  string   `toml:"bin,omitempty"`  // tracker CLI binary (e.g. "bd")
	Args []string `toml:"args,omitempty"` // CLI args emitting snapshot JSON

	ExportURL   string `toml:"export_url,omitempty"`   // HTTP snapshot endpoint
	ExportToken string `toml:"export_token,omitempty"` // bearer token for ExportURL

	// Waveplan server used for analysis.
	Server  string `toml:"server,omitempty"`
	Token   string `toml:"token,omitempty"`
	NATSURL string `toml:"nats_url,omitempty"`
}

func trackerConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".local", "state", "waveplan")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "trackers.toml"), nil
}

func loadTrackersConfig() (TrackersConfig, error) {
	path, err := trackerConfigPath()
	if err != nil {
		return TrackersConfig{}, err
	}
	var cfg TrackersConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return TrackersConfig{Trackers: map[string]Tracker{}}, nil
		}
		return TrackersConfig{}, err
	}
	if cfg.Trackers == nil {
		cfg.Trackers = map[string]Tracker{}
	}
	return cfg, nil
}

func saveTrackersConfig(cfg TrackersConfig) error {
	path, err := trackerConfigPath()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Cached active tracker values, loaded once per process.
var (
	trackerOnce   sync.Once
	cachedTracker Tracker
	cachedActive  bool
)

func loadActiveTrackerOnce() {
	trackerOnce.Do(func() {
		cfg, err := loadTrackersConfig()
		if err != nil || cfg.Active == "" {
			return
		}
		t, ok := cfg.Trackers[cfg.Active]
		if !ok {
			return
		}
		cachedTracker = t
		cachedActive = true
	})
}

func activeTracker() (Tracker, bool) {
	loadActiveTrackerOnce()
	return cachedTracker, cachedActive
}

func activeTrackerServer() string {
	loadActiveTrackerOnce()
	return cachedTracker.Server
}

func activeTrackerToken() string {
	loadActiveTrackerOnce()
	return cachedTracker.Token
}

func activeTrackerNATSURL() string {
	loadActiveTrackerOnce()
	return cachedTracker.NATSURL
}
