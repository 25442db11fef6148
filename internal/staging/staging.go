// Package staging gates every write to the record store behind an explicit
// operator confirmation.
//
// Protocol is the only type in gophroster that calls the mutating methods of
// records.Repository. Each of its operations stages the effect of the write,
// asks a Confirmer, and touches the store only after an affirmative answer.
package staging

import (
	"context"

	"github.com/dmitrijs2005/gophroster/internal/models"
)

// StageUpdate returns the record that would result from applying changes to
// existing. Neither argument is modified.
func StageUpdate(existing models.Record, changes models.Changes) models.Record {
	preview := existing.Clone()
	for k, v := range changes {
		preview[k] = v
	}
	return preview
}

// Confirmer asks the operator to approve a staged write. A false answer with
// a nil error means the operator declined. An error means the answer could not
// be read; callers treat it as not confirmed.
type Confirmer interface {
	ConfirmChanges(ctx context.Context, preview models.Record) (bool, error)
	ConfirmDelete(ctx context.Context, id int64) (bool, error)
}

// Outcome reports whether a gated write reached the store.
type Outcome int

const (
	OutcomeCanceled Outcome = iota
	OutcomeCommitted
)

func (o Outcome) String() string {
	if o == OutcomeCommitted {
		return "committed"
	}
	return "canceled"
}
