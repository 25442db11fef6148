// Package storage opens the record store selected by configuration, running
// schema migrations for the SQL backends.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"google.golang.org/api/option"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/gophroster/internal/common"
	"github.com/dmitrijs2005/gophroster/internal/config"
	"github.com/dmitrijs2005/gophroster/internal/filex"
	"github.com/dmitrijs2005/gophroster/internal/logging"
	"github.com/dmitrijs2005/gophroster/internal/migrations"
	"github.com/dmitrijs2005/gophroster/internal/repositories/records"
)

var (
	sqlOpen        = sql.Open
	gooseUpContext = goose.UpContext

	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newFirestoreClient = firestore.NewClient
)

// Open returns the repository for cfg.StoreBackend bound to cfg.Collection.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (records.Repository, error) {
	log = log.With("backend", cfg.StoreBackend, "collection", cfg.Collection)

	switch cfg.StoreBackend {
	case config.BackendMemory:
		log.Warn(ctx, "using in-memory store, records are lost on exit")
		return records.NewMemoryRepository(), nil

	case config.BackendSQLite:
		if path, ok := sqliteFilePath(cfg.SQLiteDSN); ok {
			if _, err := filex.EnsureParentDir(path); err != nil {
				return nil, err
			}
		}
		db, err := openSQL(ctx, "sqlite", cfg.SQLiteDSN, "sqlite3", migrations.SQLite, "sqlite", log)
		if err != nil {
			return nil, err
		}
		return records.NewSQLiteRepository(db, cfg.Collection), nil

	case config.BackendPostgres:
		db, err := openSQL(ctx, "pgx", cfg.DatabaseDSN, "pgx", migrations.Postgres, "postgres", log)
		if err != nil {
			return nil, err
		}
		return records.NewPostgresRepository(db, cfg.Collection), nil

	case config.BackendFirestore:
		client, err := openFirestore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return records.NewFirestoreRepository(client, cfg.Collection), nil

	case config.BackendS3:
		client, err := openS3(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return records.NewS3Repository(client, cfg.S3Bucket, cfg.Collection), nil
	}

	return nil, fmt.Errorf("%w: %q", common.ErrorUnknownBackend, cfg.StoreBackend)
}

func openSQL(ctx context.Context, driver, dsn, dialect string, fsys fs.FS, dir string, log logging.Logger) (*sql.DB, error) {
	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == "sqlite" {
		// single writer
		db.SetMaxOpenConns(1)
	}

	if err := runMigrations(ctx, db, dialect, fsys, dir, log); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// sqliteFilePath returns the file behind a plain-path DSN. URI and in-memory
// DSNs are left to the driver.
func sqliteFilePath(dsn string) (string, bool) {
	if dsn == "" || dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return "", false
	}
	return dsn, true
}

func runMigrations(ctx context.Context, db *sql.DB, dialect string, fsys fs.FS, dir string, log logging.Logger) error {
	goose.SetBaseFS(fsys)
	goose.SetLogger(&gooseLogger{ctx: ctx, log: log})
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Debug(ctx, "migrations applied", "dialect", dialect)
	return nil
}

func openFirestore(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	projectID := cfg.FirestoreProjectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	var opts []option.ClientOption
	if cfg.FirestoreCredentialsFile != "" && os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		if _, err := os.Stat(cfg.FirestoreCredentialsFile); err == nil {
			opts = append(opts, option.WithCredentialsFile(cfg.FirestoreCredentialsFile))
		}
	}

	client, err := newFirestoreClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: %w", err)
	}
	return client, nil
}

func openS3(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	return newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// gooseLogger routes goose output to the session log instead of stdout.
type gooseLogger struct {
	ctx context.Context
	log logging.Logger
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.log.Debug(l.ctx, fmt.Sprintf(format, v...))
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	l.log.Error(l.ctx, msg)
	panic(msg)
}
