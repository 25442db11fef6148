package config

import (
	"os"

	"github.com/joho/godotenv"
)

// envBindings maps environment variable names to Config fields.
var envBindings = map[string]func(*Config) *string{
	"GR_STORE":             func(c *Config) *string { return &c.StoreBackend },
	"GR_COLLECTION":        func(c *Config) *string { return &c.Collection },
	"GR_SQLITE_DSN":        func(c *Config) *string { return &c.SQLiteDSN },
	"DATABASE_URL":         func(c *Config) *string { return &c.DatabaseDSN },
	"GOOGLE_CLOUD_PROJECT": func(c *Config) *string { return &c.FirestoreProjectID },
	"GR_CREDENTIALS_FILE":  func(c *Config) *string { return &c.FirestoreCredentialsFile },
	"GR_S3_BUCKET":         func(c *Config) *string { return &c.S3Bucket },
	"GR_S3_REGION":         func(c *Config) *string { return &c.S3Region },
	"GR_S3_ENDPOINT":       func(c *Config) *string { return &c.S3BaseEndpoint },
	"GR_S3_ACCESS_KEY":     func(c *Config) *string { return &c.S3AccessKey },
	"GR_S3_SECRET_KEY":     func(c *Config) *string { return &c.S3SecretKey },
	"LOG_LEVEL":            func(c *Config) *string { return &c.LogLevel },
	"LOG_FORMAT":           func(c *Config) *string { return &c.LogFormat },
}

// dotenvLoad is a seam for godotenv.Load.
var dotenvLoad = func() error { return godotenv.Load() }

// parseEnv overlays cfg with non-empty environment variables. A .env file in
// the working directory is loaded first when present; variables already set
// in the environment win over it.
func parseEnv(cfg *Config) {
	_ = dotenvLoad()

	for name, field := range envBindings {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*field(cfg) = v
		}
	}
}
