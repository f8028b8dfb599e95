// config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type FAAConfig struct {
	ArchiveURL         string `yaml:"archive_url"`
	RegistryPageURL    string `yaml:"registry_page_url"`
	DownloadRetries    int    `yaml:"download_retries"`
	DownloadTimeoutStr string `yaml:"download_timeout"`
	DownloadTimeout    time.Duration // Parsed duration
}

type DataConfig struct {
	Dir            string `yaml:"dir"`
	ArchiveName    string `yaml:"archive_name"`
	ExtractDirName string `yaml:"extract_dir"`
}

type ImportConfig struct {
	ModelBatchSize    int `yaml:"model_batch_size"`
	EngineBatchSize   int `yaml:"engine_batch_size"`
	AircraftBatchSize int `yaml:"aircraft_batch_size"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	FAA      FAAConfig      `yaml:"faa"`
	Data     DataConfig     `yaml:"data"`
	Import   ImportConfig   `yaml:"import"`
}

// ArchivePath is where the last-known-good FAA zip lives on disk.
func (c *Config) ArchivePath() string {
	return filepath.Join(c.Data.Dir, c.Data.ArchiveName)
}

// TempArchivePath is the download target; promoted to ArchivePath only
// after the checksum comparison says the content changed.
func (c *Config) TempArchivePath() string {
	return filepath.Join(c.Data.Dir, "temp_"+c.Data.ArchiveName)
}

// ExtractDir is where the archive members (MASTER.txt, ACFTREF.txt,
// ENGINE.txt, ...) are unpacked.
func (c *Config) ExtractDir() string {
	return filepath.Join(c.Data.Dir, c.Data.ExtractDirName)
}

// Load reads configuration from a YAML file, applies defaults for
// anything left unset, and lets a few environment variables
// (FAA_DB_PATH, FAA_DATA_DIR, PORT) override the file. The returned
// Config is handed to each component at construction; there is no
// package-level config state.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", configPath, err)
		}
	}

	// Env overrides come before defaulting so a FAA_DATA_DIR override
	// also moves the derived database path.
	if v := os.Getenv("FAA_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("FAA_DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}

	applyDefaults(cfg)

	// Parse durations
	if cfg.FAA.DownloadTimeoutStr != "" {
		d, err := time.ParseDuration(cfg.FAA.DownloadTimeoutStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse download_timeout: %w", err)
		}
		cfg.FAA.DownloadTimeout = d
	} else {
		cfg.FAA.DownloadTimeout = 60 * time.Second
	}

	// The data directory holds the archive, the extracted files and
	// (by default) the database file, so make sure it exists up front.
	if err := os.MkdirAll(cfg.Data.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", cfg.Data.Dir, err)
	}
	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8000"
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}
	if cfg.Data.ArchiveName == "" {
		cfg.Data.ArchiveName = "ReleasableAircraft.zip"
	}
	if cfg.Data.ExtractDirName == "" {
		cfg.Data.ExtractDirName = "FAA_Database"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = filepath.Join(cfg.Data.Dir, "faa_aircraft.db")
	}
	if cfg.FAA.ArchiveURL == "" {
		cfg.FAA.ArchiveURL = "https://registry.faa.gov/database/ReleasableAircraft.zip"
	}
	if cfg.FAA.RegistryPageURL == "" {
		cfg.FAA.RegistryPageURL = "https://www.faa.gov/licenses_certificates/aircraft_certification/aircraft_registry/releasable_aircraft_download"
	}
	if cfg.FAA.DownloadRetries <= 0 {
		cfg.FAA.DownloadRetries = 5
	}
	if cfg.Import.ModelBatchSize <= 0 {
		cfg.Import.ModelBatchSize = 10000
	}
	if cfg.Import.EngineBatchSize <= 0 {
		cfg.Import.EngineBatchSize = 5000
	}
	if cfg.Import.AircraftBatchSize <= 0 {
		cfg.Import.AircraftBatchSize = 50000
	}
}
