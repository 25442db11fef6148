package records

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/gophroster/internal/common"
	"github.com/dmitrijs2005/gophroster/internal/dbx"
	"github.com/dmitrijs2005/gophroster/internal/models"
)

// SQLiteRepository stores one collection in the documents table of a SQLite
// database, each document as a JSON text column.
type SQLiteRepository struct {
	db         *sql.DB
	collection string
}

func NewSQLiteRepository(db *sql.DB, collection string) *SQLiteRepository {
	return &SQLiteRepository{db: db, collection: collection}
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, rec models.Record) error {
	data, err := encode(rec)
	if err != nil {
		return err
	}
	return r.put(ctx, r.db, key, data)
}

func (r *SQLiteRepository) put(ctx context.Context, q dbx.DBTX, key string, data []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO documents (collection, doc_key, data) VALUES (?, ?, ?)
		ON CONFLICT (collection, doc_key) DO UPDATE
		SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		r.collection, key, string(data))
	return err
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) (models.Record, error) {
	return r.get(ctx, r.db, key)
}

func (r *SQLiteRepository) get(ctx context.Context, q dbx.DBTX, key string) (models.Record, error) {
	var data string
	err := q.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = ? AND doc_key = ?`,
		r.collection, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode([]byte(data))
}

// Update reads, merges and writes the document inside one transaction.
func (r *SQLiteRepository) Update(ctx context.Context, key string, changes models.Changes) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		rec, err := r.get(ctx, tx, key)
		if err != nil {
			return err
		}
		data, err := encode(merge(rec, changes))
		if err != nil {
			return err
		}
		return r.put(ctx, tx, key, data)
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND doc_key = ?`, r.collection, key)
	return err
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM documents WHERE collection = ? ORDER BY length(doc_key), doc_key`, r.collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Record
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		rec, err := decode([]byte(data))
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
