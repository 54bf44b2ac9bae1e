package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/vitrine/internal/infrastructure/logger"
)

const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
	DBDriverJSONFile = "jsonfile"

	BlobDriverDisk  = "disk"
	BlobDriverMinIO = "minio"

	maxFilesCeiling = 5
)

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

type Config struct {
	Port        int
	DataDir     string
	BehindProxy bool
	JWTSecret   string

	DBDriver    string
	DatabaseURL string

	BlobDriver   string
	AssetRoot    string
	PublicPrefix string
	MinIO        MinIOConfig

	MaxFileSizeMB int
	MaxFiles      int

	OrphanGrace   time.Duration
	SweepInterval time.Duration

	Log logger.Config
}

func (c *Config) MaxFileBytes() int64 {
	return int64(c.MaxFileSizeMB) << 20
}

// Load reads the configuration from the environment. When path is set the
// file is read first and environment variables override it. Keys match the
// environment variable names, lowercased.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var errs []error
	intOf := func(key string) int {
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s: %w", strings.ToUpper(key), err))
		}
		return n
	}
	durationOf := func(key string) time.Duration {
		d, err := time.ParseDuration(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s: %w", strings.ToUpper(key), err))
		}
		return d
	}

	dataDir := v.GetString("data_dir")
	assetRoot := v.GetString("asset_root")
	if assetRoot == "" {
		assetRoot = filepath.Join(dataDir, "uploads")
	}

	cfg := &Config{
		Port:        intOf("port"),
		DataDir:     dataDir,
		BehindProxy: v.GetBool("behind_proxy"),
		JWTSecret:   v.GetString("jwt_secret"),

		DBDriver:    strings.ToLower(v.GetString("db_driver")),
		DatabaseURL: v.GetString("database_url"),

		BlobDriver:   strings.ToLower(v.GetString("blob_driver")),
		AssetRoot:    assetRoot,
		PublicPrefix: "/" + strings.Trim(v.GetString("public_prefix"), "/"),
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("minio_endpoint"),
			AccessKey: v.GetString("minio_access_key"),
			SecretKey: v.GetString("minio_secret_key"),
			Bucket:    v.GetString("minio_bucket"),
			Region:    v.GetString("minio_region"),
			UseSSL:    v.GetBool("minio_use_ssl"),
		},

		MaxFileSizeMB: intOf("max_file_size_mb"),
		MaxFiles:      intOf("max_files"),

		OrphanGrace:   durationOf("orphan_grace"),
		SweepInterval: durationOf("sweep_interval"),

		Log: logger.Config{
			Level:      v.GetString("log_level"),
			Format:     v.GetString("log_format"),
			File:       v.GetString("log_file"),
			MaxSizeMB:  intOf("log_max_size_mb"),
			MaxBackups: intOf("log_max_backups"),
			MaxAgeDays: intOf("log_max_age_days"),
		},
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("data_dir", "/data")
	v.SetDefault("behind_proxy", false)
	v.SetDefault("db_driver", DBDriverSQLite)
	v.SetDefault("blob_driver", BlobDriverDisk)
	v.SetDefault("public_prefix", "/uploads")
	v.SetDefault("minio_use_ssl", false)
	v.SetDefault("max_file_size_mb", 5)
	v.SetDefault("max_files", 5)
	v.SetDefault("orphan_grace", "1h")
	v.SetDefault("sweep_interval", "6h")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("log_max_size_mb", 100)
	v.SetDefault("log_max_backups", 5)
	v.SetDefault("log_max_age_days", 30)
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}
	if c.MaxFileSizeMB <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE_MB must be positive")
	}
	if c.MaxFiles <= 0 || c.MaxFiles > maxFilesCeiling {
		return fmt.Errorf("MAX_FILES must be between 1 and %d", maxFilesCeiling)
	}
	if c.OrphanGrace <= 0 {
		return fmt.Errorf("ORPHAN_GRACE must be positive")
	}
	if c.SweepInterval < 0 {
		return fmt.Errorf("SWEEP_INTERVAL must not be negative")
	}

	switch c.DBDriver {
	case DBDriverSQLite, DBDriverJSONFile:
	case DBDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}

	switch c.BlobDriver {
	case BlobDriverDisk:
	case BlobDriverMinIO:
		if c.MinIO.Endpoint == "" || c.MinIO.Bucket == "" {
			return fmt.Errorf("MINIO_ENDPOINT and MINIO_BUCKET are required for the minio driver")
		}
	default:
		return fmt.Errorf("unknown BLOB_DRIVER %q", c.BlobDriver)
	}
	return nil
}
