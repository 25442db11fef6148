package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/gophroster/internal/flagx"
)

var knownFlags = []string{"-s", "-n", "-f", "-d", "-p", "-k", "-b", "-g", "-e", "-u", "-w", "-l", "-o"}

// parseFlags populates Config fields from command-line flags. os.Args is
// filtered through flagx.FilterArgs first so -c/-config and unknown flags do
// not trip the parser. Parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreBackend, "s", cfg.StoreBackend, "store backend (memory, sqlite, postgres, firestore, s3)")
	fs.StringVar(&cfg.Collection, "n", cfg.Collection, "collection name")
	fs.StringVar(&cfg.SQLiteDSN, "f", cfg.SQLiteDSN, "SQLite DSN")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.FirestoreProjectID, "p", cfg.FirestoreProjectID, "Firestore project id")
	fs.StringVar(&cfg.FirestoreCredentialsFile, "k", cfg.FirestoreCredentialsFile, "Firestore credentials file")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.S3AccessKey, "u", cfg.S3AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3SecretKey, "w", cfg.S3SecretKey, "S3 secret key")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "o", cfg.LogFormat, "log format (text, json, zap)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
