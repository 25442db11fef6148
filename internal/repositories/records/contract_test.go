package records

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophroster/internal/common"
	"github.com/dmitrijs2005/gophroster/internal/models"
)

func sampleRecord(id int64) models.Record {
	return models.Record{
		models.FieldUserID:    id,
		models.FieldFirstName: "Ada",
		models.FieldLastName:  "Lovelace",
		models.FieldEmail:     "ada@example.com",
		models.FieldPhone:     "555-0100",
		models.FieldSex:       "F",
		models.FieldTitle:     "Ms",
		models.FieldHeight:    65.5,
		models.FieldWeight:    120.0,
		models.FieldClearance: "admin",
	}
}

// runRepositoryContract exercises behaviour every backend must share.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		repo := newRepo(t)
		want := sampleRecord(1000)
		require.NoError(t, repo.Set(ctx, "1000", want))

		got, err := repo.Get(ctx, "1000")
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Get() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Get(ctx, "4242")
		require.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("set overwrites", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Set(ctx, "1000", sampleRecord(1000)))
		require.NoError(t, repo.Set(ctx, "1000", models.Record{models.FieldUserID: int64(1000)}))

		got, err := repo.Get(ctx, "1000")
		require.NoError(t, err)
		assert.Equal(t, models.Record{models.FieldUserID: int64(1000)}, got)
	})

	t.Run("update is partial", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Set(ctx, "2000", models.Record{
			models.FieldFirstName: "A",
			models.FieldEmail:     "a@x.com",
			models.FieldUserID:    int64(2000),
		}))

		require.NoError(t, repo.Update(ctx, "2000", models.Changes{models.FieldEmail: "b@x.com"}))

		got, err := repo.Get(ctx, "2000")
		require.NoError(t, err)
		assert.Equal(t, models.Record{
			models.FieldFirstName: "A",
			models.FieldEmail:     "b@x.com",
			models.FieldUserID:    int64(2000),
		}, got)
	})

	t.Run("update numeric field", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Set(ctx, "1000", sampleRecord(1000)))
		require.NoError(t, repo.Update(ctx, "1000", models.Changes{models.FieldHeight: 70.0}))

		got, err := repo.Get(ctx, "1000")
		require.NoError(t, err)
		assert.Equal(t, 70.0, got[models.FieldHeight])
		assert.Equal(t, 120.0, got[models.FieldWeight])
	})

	t.Run("update missing", func(t *testing.T) {
		repo := newRepo(t)
		err := repo.Update(ctx, "4242", models.Changes{models.FieldEmail: "x@x.com"})
		require.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Set(ctx, "3000", sampleRecord(3000)))
		require.NoError(t, repo.Delete(ctx, "3000"))

		_, err := repo.Get(ctx, "3000")
		require.ErrorIs(t, err, common.ErrorNotFound)
		require.NoError(t, repo.Delete(ctx, "3000"), "deleting an absent key is not an error")
	})

	t.Run("get all ordered numerically by key", func(t *testing.T) {
		repo := newRepo(t)
		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		for _, id := range []int64{3000, 10000, 1000, 2001} {
			require.NoError(t, repo.Set(ctx, models.Key(id), sampleRecord(id)))
		}

		all, err = repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)
		var ids []int64
		for _, rec := range all {
			id, err := rec.ID()
			require.NoError(t, err)
			ids = append(ids, id)
		}
		assert.Equal(t, []int64{1000, 2001, 3000, 10000}, ids)
	})
}
