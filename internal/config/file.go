package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophroster/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is the DTO decoded from a config file. Pointer fields tell an
// absent key apart from an empty value.
type FileConfig struct {
	StoreBackend             *string `json:"store" yaml:"store"`
	Collection               *string `json:"collection" yaml:"collection"`
	SQLiteDSN                *string `json:"sqlite_dsn" yaml:"sqlite_dsn"`
	DatabaseDSN              *string `json:"database_dsn" yaml:"database_dsn"`
	FirestoreProjectID       *string `json:"firestore_project_id" yaml:"firestore_project_id"`
	FirestoreCredentialsFile *string `json:"firestore_credentials_file" yaml:"firestore_credentials_file"`
	S3Bucket                 *string `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region                 *string `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint           *string `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	S3AccessKey              *string `json:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey              *string `json:"s3_secret_key" yaml:"s3_secret_key"`
	LogLevel                 *string `json:"log_level" yaml:"log_level"`
	LogFormat                *string `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with values from the file named by -c/-config.
// Without the flag nothing happens. Read or decode errors panic, matching
// parseFlags.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.StoreBackend, fc.StoreBackend)
	set(&cfg.Collection, fc.Collection)
	set(&cfg.SQLiteDSN, fc.SQLiteDSN)
	set(&cfg.DatabaseDSN, fc.DatabaseDSN)
	set(&cfg.FirestoreProjectID, fc.FirestoreProjectID)
	set(&cfg.FirestoreCredentialsFile, fc.FirestoreCredentialsFile)
	set(&cfg.S3Bucket, fc.S3Bucket)
	set(&cfg.S3Region, fc.S3Region)
	set(&cfg.S3BaseEndpoint, fc.S3BaseEndpoint)
	set(&cfg.S3AccessKey, fc.S3AccessKey)
	set(&cfg.S3SecretKey, fc.S3SecretKey)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.LogFormat, fc.LogFormat)
}
