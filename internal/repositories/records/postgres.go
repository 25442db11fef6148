package records

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/gophroster/internal/common"
	"github.com/dmitrijs2005/gophroster/internal/models"
)

// PostgresRepository stores one collection in the documents table of a
// PostgreSQL database. Documents are JSONB, so partial updates are a single
// "data || changes" statement.
type PostgresRepository struct {
	db         *sql.DB
	collection string
}

func NewPostgresRepository(db *sql.DB, collection string) *PostgresRepository {
	return &PostgresRepository{db: db, collection: collection}
}

func (r *PostgresRepository) Set(ctx context.Context, key string, rec models.Record) error {
	data, err := encode(rec)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO documents (collection, doc_key, data) VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (collection, doc_key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = NOW()`,
		r.collection, key, string(data))
	return err
}

func (r *PostgresRepository) Get(ctx context.Context, key string) (models.Record, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND doc_key = $2`,
		r.collection, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func (r *PostgresRepository) Update(ctx context.Context, key string, changes models.Changes) error {
	data, err := encode(changes)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE documents SET data = data || $3::jsonb, updated_at = NOW()
		WHERE collection = $1 AND doc_key = $2`,
		r.collection, key, string(data))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = $1 AND doc_key = $2`, r.collection, key)
	return err
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM documents WHERE collection = $1 ORDER BY length(doc_key), doc_key`, r.collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Record
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		rec, err := decode(data)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Close() error {
	return r.db.Close()
}
