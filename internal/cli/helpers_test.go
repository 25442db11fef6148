package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophroster/internal/logging"
	"github.com/dmitrijs2005/gophroster/internal/models"
	"github.com/dmitrijs2005/gophroster/internal/repositories/records"
)

// spyRepo counts mutating calls and can be told to fail reads and creates.
type spyRepo struct {
	*records.MemoryRepository
	writes    int
	getAllErr error
	setErr    error
}

func newSpyRepo() *spyRepo {
	return &spyRepo{MemoryRepository: records.NewMemoryRepository()}
}

func (r *spyRepo) Set(ctx context.Context, key string, rec models.Record) error {
	r.writes++
	if r.setErr != nil {
		return r.setErr
	}
	return r.MemoryRepository.Set(ctx, key, rec)
}

func (r *spyRepo) Update(ctx context.Context, key string, changes models.Changes) error {
	r.writes++
	return r.MemoryRepository.Update(ctx, key, changes)
}

func (r *spyRepo) Delete(ctx context.Context, key string) error {
	r.writes++
	return r.MemoryRepository.Delete(ctx, key)
}

func (r *spyRepo) GetAll(ctx context.Context) ([]models.Record, error) {
	if r.getAllErr != nil {
		return nil, r.getAllErr
	}
	return r.MemoryRepository.GetAll(ctx)
}

var errStoreDown = errors.New("store unavailable")

func stubNoTerminal(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

// newScriptedApp builds an App whose console reads the given answers, one per
// line, and writes to the returned buffer.
func newScriptedApp(t *testing.T, repo records.Repository, answers ...string) (*App, *bytes.Buffer) {
	t.Helper()
	stubNoTerminal(t)
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	return NewApp(repo, NewConsole(in, out), logging.Nop()), out
}

// seedUser stores a user with the given id and returns the stored record.
func seedUser(t *testing.T, repo records.Repository, id int64) models.Record {
	t.Helper()
	rec := models.Record{
		models.FieldUserID:    id,
		models.FieldFirstName: "Ada",
		models.FieldLastName:  "Lovelace",
		models.FieldEmail:     "ada@example.com",
		models.FieldPhone:     "555-0100",
		models.FieldSex:       "F",
		models.FieldTitle:     "Ms",
		models.FieldHeight:    65.0,
		models.FieldWeight:    120.0,
		models.FieldClearance: "admin",
	}
	require.NoError(t, repo.Set(context.Background(), models.Key(id), rec))
	return rec
}

func loginAnswers(id, email string) []string {
	return []string{"y", id, "1", email}
}

func script(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
