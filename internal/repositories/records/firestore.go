package records

import (
	"context"
	"maps"
	"slices"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gophroster/internal/common"
	"github.com/dmitrijs2005/gophroster/internal/models"
)

// FirestoreRepository stores one collection in Cloud Firestore, one document
// per user.
type FirestoreRepository struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreRepository(client *firestore.Client, collection string) *FirestoreRepository {
	return &FirestoreRepository{client: client, collection: collection}
}

func (r *FirestoreRepository) doc(key string) *firestore.DocumentRef {
	return r.client.Collection(r.collection).Doc(key)
}

func (r *FirestoreRepository) Set(ctx context.Context, key string, rec models.Record) error {
	_, err := r.doc(key).Set(ctx, map[string]any(rec))
	return mapFirestoreError(err)
}

func (r *FirestoreRepository) Get(ctx context.Context, key string) (models.Record, error) {
	snap, err := r.doc(key).Get(ctx)
	if err != nil {
		return nil, mapFirestoreError(err)
	}
	return models.Normalize(models.Record(snap.Data())), nil
}

// Update sends one field path per changed field, so fields not named in
// changes are never touched.
func (r *FirestoreRepository) Update(ctx context.Context, key string, changes models.Changes) error {
	if len(changes) == 0 {
		return nil
	}
	updates := make([]firestore.Update, 0, len(changes))
	for _, field := range slices.Sorted(maps.Keys(changes)) {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{field}, Value: changes[field]})
	}
	_, err := r.doc(key).Update(ctx, updates)
	return mapFirestoreError(err)
}

func (r *FirestoreRepository) Delete(ctx context.Context, key string) error {
	_, err := r.doc(key).Delete(ctx)
	return mapFirestoreError(err)
}

func (r *FirestoreRepository) GetAll(ctx context.Context) ([]models.Record, error) {
	snaps, err := r.client.Collection(r.collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, mapFirestoreError(err)
	}
	slices.SortFunc(snaps, func(a, b *firestore.DocumentSnapshot) int {
		return compareKeys(a.Ref.ID, b.Ref.ID)
	})
	out := make([]models.Record, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, models.Normalize(models.Record(s.Data())))
	}
	return out, nil
}

func (r *FirestoreRepository) Close() error {
	return r.client.Close()
}

func mapFirestoreError(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return common.ErrorNotFound
	}
	return err
}
