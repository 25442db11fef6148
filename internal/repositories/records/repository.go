// Package records provides the document stores holding the users
// collection. Each backend maps a string key (the decimal user id) to a
// models.Record and supports partial, non-destructive updates.
package records

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"strings"

	"github.com/dmitrijs2005/gophroster/internal/models"
)

// Repository is a keyed document collection.
//
// Get and Update return common.ErrorNotFound when the key is absent. Update
// overwrites only the fields present in changes. Delete of an absent key is
// not an error. GetAll returns documents in compareKeys order.
type Repository interface {
	Set(ctx context.Context, key string, rec models.Record) error
	Get(ctx context.Context, key string) (models.Record, error)
	Update(ctx context.Context, key string, changes models.Changes) error
	Delete(ctx context.Context, key string) error
	GetAll(ctx context.Context) ([]models.Record, error)
	Close() error
}

func encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

func decode(data []byte) (models.Record, error) {
	var rec models.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if rec == nil {
		rec = models.Record{}
	}
	return models.Normalize(rec), nil
}

// merge applies changes on top of rec in place.
func merge(rec models.Record, changes models.Changes) models.Record {
	if rec == nil {
		rec = models.Record{}
	}
	maps.Copy(rec, changes)
	return rec
}

// compareKeys orders decimal keys numerically: shorter keys first, then
// byte-wise. SQL backends express the same order as
// ORDER BY length(doc_key), doc_key.
func compareKeys(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
