package users

import (
	"testing"

	"github.com/dmitrijs2005/gophroster/internal/common"
	"github.com/dmitrijs2005/gophroster/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		role  models.Clearance
		count int
		want  int64
	}{
		{name: "first admin", role: models.ClearanceAdmin, count: 0, want: 1000},
		{name: "guest after five", role: models.ClearanceGuest, count: 5, want: 3005},
		{name: "user after twelve", role: models.ClearanceUser, count: 12, want: 2012},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Allocate(tt.role, tt.count)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllocate_Deterministic(t *testing.T) {
	for _, role := range models.Clearances {
		band, err := Band(role)
		require.NoError(t, err)
		for count := 0; count < BandWidth; count += 37 {
			got, err := Allocate(role, count)
			require.NoError(t, err)
			require.Equal(t, band+int64(count), got)

			again, err := Allocate(role, count)
			require.NoError(t, err)
			require.Equal(t, got, again)
		}
	}
}

func TestAllocate_BandsDoNotOverlapBelowWidth(t *testing.T) {
	seen := map[int64]models.Clearance{}
	for _, role := range models.Clearances {
		for count := 0; count < BandWidth; count++ {
			id, err := Allocate(role, count)
			require.NoError(t, err)
			if other, ok := seen[id]; ok {
				t.Fatalf("id %d allocated for both %s and %s", id, other, role)
			}
			seen[id] = role
		}
	}
}

func TestAllocate_InvalidRole(t *testing.T) {
	_, err := Allocate(models.Clearance("root"), 0)
	require.ErrorIs(t, err, common.ErrorInvalidRole)
}

func TestAllocate_NegativeCount(t *testing.T) {
	_, err := Allocate(models.ClearanceAdmin, -1)
	require.ErrorIs(t, err, common.ErrorInvalidCount)
}

func basicFields() models.Record {
	return models.Record{
		models.FieldFirstName: "Ada",
		models.FieldLastName:  "Lovelace",
		models.FieldEmail:     "ada@example.com",
		models.FieldPhone:     "555-0100",
		models.FieldSex:       "F",
		models.FieldTitle:     "Ms",
		models.FieldHeight:    65.0,
		models.FieldWeight:    120.0,
	}
}

func TestBuild(t *testing.T) {
	basic := basicFields()
	before := basic.Clone()

	rec, err := Build(basic, models.ClearanceAdmin, 1000)
	require.NoError(t, err)

	want := basicFields()
	want[models.FieldClearance] = "admin"
	want[models.FieldUserID] = int64(1000)

	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("Build() mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, cmp.Diff(before, basic), "input must not be modified")
}

func TestBuild_MissingField(t *testing.T) {
	basic := basicFields()
	delete(basic, models.FieldEmail)

	_, err := Build(basic, models.ClearanceUser, 2000)
	require.ErrorIs(t, err, common.ErrorMissingField)
	assert.Contains(t, err.Error(), models.FieldEmail)
}
