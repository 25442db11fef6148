package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears every bound environment variable, disables .env loading and
// restores os.Args after the test.
func isolate(t *testing.T, args ...string) {
	t.Helper()
	for name := range envBindings {
		t.Setenv(name, "")
	}
	origLoad := dotenvLoad
	dotenvLoad = func() error { return nil }
	origArgs := os.Args
	os.Args = append([]string{"testbin"}, args...)
	t.Cleanup(func() {
		dotenvLoad = origLoad
		os.Args = origArgs
	})
}

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, BackendSQLite, c.StoreBackend)
	assert.Equal(t, "users", c.Collection)
	assert.Equal(t, "roster.db", c.SQLiteDSN)
	assert.Equal(t, "serviceAccount.json", c.FirestoreCredentialsFile)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
}

func TestLoadConfig_NoSourcesKeepsDefaults(t *testing.T) {
	isolate(t)

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestParseEnv(t *testing.T) {
	isolate(t)
	t.Setenv("GR_STORE", "firestore")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "roster-prod")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := defaults()
	parseEnv(cfg)

	assert.Equal(t, "firestore", cfg.StoreBackend)
	assert.Equal(t, "roster-prod", cfg.FirestoreProjectID)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "users", cfg.Collection)
}

func TestParseEnv_LoadsDotenv(t *testing.T) {
	isolate(t)
	called := false
	dotenvLoad = func() error {
		called = true
		return os.Setenv("GR_COLLECTION", "staff")
	}
	t.Cleanup(func() { _ = os.Unsetenv("GR_COLLECTION") })

	cfg := defaults()
	parseEnv(cfg)

	assert.True(t, called)
	assert.Equal(t, "staff", cfg.Collection)
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"store":"postgres","database_dsn":"postgres://db/roster","log_format":"zap"}`)
	isolate(t, "-config", path)

	cfg := defaults()
	parseFile(cfg)

	assert.Equal(t, BackendPostgres, cfg.StoreBackend)
	assert.Equal(t, "postgres://db/roster", cfg.DatabaseDSN)
	assert.Equal(t, "zap", cfg.LogFormat)
	assert.Equal(t, "users", cfg.Collection, "absent keys keep previous values")
}

func TestParseFile_YAML(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "store: s3\ns3_bucket: people\ns3_region: eu-west-1\n")
	isolate(t, "-c", path)

	cfg := defaults()
	parseFile(cfg)

	assert.Equal(t, BackendS3, cfg.StoreBackend)
	assert.Equal(t, "people", cfg.S3Bucket)
	assert.Equal(t, "eu-west-1", cfg.S3Region)
}

func TestParseFile_NoFlagNoChange(t *testing.T) {
	isolate(t)

	cfg := defaults()
	parseFile(cfg)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestParseFile_InvalidPanics(t *testing.T) {
	path := writeFile(t, "bad.json", `{ not json`)
	isolate(t, "-c", path)

	require.Panics(t, func() { parseFile(defaults()) })
}

func TestParseFile_MissingPanics(t *testing.T) {
	isolate(t, "-c", filepath.Join(t.TempDir(), "absent.json"))

	require.Panics(t, func() { parseFile(defaults()) })
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		mutate      func(c *Config)
	}{
		{
			name: "store and logging",
			args: []string{"-s", "memory", "-l", "info", "-o", "json"},
			mutate: func(c *Config) {
				c.StoreBackend = BackendMemory
				c.LogLevel = "info"
				c.LogFormat = "json"
			},
		},
		{
			name: "s3 settings with config flag ignored",
			args: []string{"-c", "x.json", "-b", "bucket", "-e", "http://minio:9000", "-u", "ak", "-w", "sk"},
			mutate: func(c *Config) {
				c.S3Bucket = "bucket"
				c.S3BaseEndpoint = "http://minio:9000"
				c.S3AccessKey = "ak"
				c.S3SecretKey = "sk"
			},
		},
		{
			name:        "missing value",
			args:        []string{"-s"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t, tt.args...)
			cfg := defaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg) })
			want := defaults()
			tt.mutate(want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"store":"postgres","collection":"from-file","log_level":"error"}`)
	isolate(t, "-c", path, "-n", "from-flag")
	t.Setenv("GR_COLLECTION", "from-env")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GR_S3_BUCKET", "env-bucket")

	cfg := LoadConfig()

	assert.Equal(t, "from-flag", cfg.Collection)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, BackendPostgres, cfg.StoreBackend)
	assert.Equal(t, "env-bucket", cfg.S3Bucket)
}
