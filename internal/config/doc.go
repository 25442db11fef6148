// Package config loads runtime configuration for the gophroster CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after loading an optional .env file (see parseEnv).
//  3. Optional config file selected via -c or -config (see parseFile). Files
//     ending in .yaml or .yml are decoded as YAML, anything else as JSON.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   store backend: memory, sqlite, postgres, firestore, s3
//	-n string   collection (table / key prefix) name
//	-f string   SQLite DSN
//	-d string   PostgreSQL DSN
//	-p string   Firestore project id
//	-k string   Firestore service-account credentials file
//	-b string   S3 bucket
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-u string   S3 access key
//	-w string   S3 secret key
//	-l string   log level: debug, info, warn, error
//	-o string   log format: text, json, zap
//
// # File schema
//
//	{
//	  "store": "firestore",
//	  "collection": "users",
//	  "firestore_project_id": "my-project",
//	  "firestore_credentials_file": "serviceAccount.json",
//	  "log_level": "info"
//	}
//
// Fields missing from the file keep their previous values.
package config
