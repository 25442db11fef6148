package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophroster/internal/common"
	"github.com/dmitrijs2005/gophroster/internal/models"
	"github.com/dmitrijs2005/gophroster/internal/staging"
)

func (a *App) RetrieveAll(ctx context.Context) error {
	all, err := a.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("retrieve users: %w", err)
	}
	a.console.Records(all)
	return nil
}

func (a *App) UpdateUser(ctx context.Context) error {
	id, ok, err := a.askExistingID(ctx)
	if err != nil || !ok {
		return err
	}

	changes, err := a.askChanges()
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		a.console.Warning("No changes entered.")
		return nil
	}

	preview, outcome, err := a.protocol.Update(ctx, id, changes)
	if errors.Is(err, common.ErrorNotFound) {
		a.console.Warning(fmt.Sprintf("User %d not found.", id))
		return nil
	}
	if err != nil {
		return err
	}
	if outcome == staging.OutcomeCanceled {
		a.console.Warning("Update canceled.")
		return nil
	}

	a.console.Success("User updated.")
	a.console.Record(preview)
	return nil
}

func (a *App) DeleteUser(ctx context.Context) error {
	id, ok, err := a.askExistingID(ctx)
	if err != nil || !ok {
		return err
	}

	outcome, err := a.protocol.Delete(ctx, id)
	if err != nil {
		return err
	}
	if outcome == staging.OutcomeCanceled {
		a.console.Warning("Delete canceled.")
		return nil
	}
	a.console.Success("User deleted.")
	return nil
}

// askExistingID prompts for a user id and reports whether it names a stored
// record. Invalid and unknown ids are announced here.
func (a *App) askExistingID(ctx context.Context) (int64, bool, error) {
	raw, err := a.console.Ask("\nEnter user ID: ")
	if err != nil {
		return 0, false, err
	}
	id, err := models.ParseID(raw)
	if err != nil {
		a.console.Warning(fmt.Sprintf("%q is not a valid user ID.", raw))
		return 0, false, nil
	}

	_, err = a.repo.Get(ctx, models.Key(id))
	if errors.Is(err, common.ErrorNotFound) {
		a.console.Warning(fmt.Sprintf("User %d not found.", id))
		return id, false, nil
	}
	if err != nil {
		return id, false, fmt.Errorf("load user %d: %w", id, err)
	}
	return id, true, nil
}

// askChanges collects new values for the basic fields. A blank answer leaves
// the field out of the change set.
func (a *App) askChanges() (models.Changes, error) {
	a.console.Println("\nEnter new values (leave blank to skip):")

	changes := models.Changes{}
	for _, field := range models.BasicFields {
		for {
			v, err := a.console.Ask(field + ": ")
			if err != nil {
				return nil, err
			}
			if v == "" {
				break
			}
			if !models.IsNumericField(field) {
				changes[field] = v
				break
			}
			if n, ok := parseNumber(v); ok {
				changes[field] = n
				break
			}
			a.console.Println(invalidNumberMessage)
		}
	}
	return changes, nil
}
