package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophroster/internal/common"
	"github.com/dmitrijs2005/gophroster/internal/models"
	"github.com/dmitrijs2005/gophroster/internal/staging"
	"github.com/dmitrijs2005/gophroster/internal/users"
)

var basicPrompts = []struct {
	field  string
	prompt string
}{
	{models.FieldFirstName, "First name: "},
	{models.FieldLastName, "Last name: "},
	{models.FieldEmail, "Email: "},
	{models.FieldPhone, "Phone number: "},
	{models.FieldSex, "Sex (M/F): "},
	{models.FieldTitle, "Title (Mr, Ms, Dr, etc.): "},
	{models.FieldHeight, "Height (in inches): "},
	{models.FieldWeight, "Weight (in pounds): "},
}

// Onboard collects a new user's details, allocates an id for the chosen
// clearance and creates the record after confirmation. A declined
// confirmation ends with common.ErrorCanceled.
func (a *App) Onboard(ctx context.Context) error {
	a.console.Header("New User Setup")

	basic, err := a.askBasicInfo()
	if err != nil {
		return err
	}
	role, err := a.askClearance()
	if err != nil {
		return err
	}

	all, err := a.repo.GetAll(ctx)
	if err != nil {
		a.console.Error(err.Error())
		return fmt.Errorf("count users: %w", err)
	}
	id, err := users.Allocate(role, len(all))
	if err != nil {
		return err
	}
	rec, err := users.Build(basic, role, id)
	if err != nil {
		return err
	}

	_, err = a.repo.Get(ctx, models.Key(id))
	switch {
	case err == nil:
		a.log.Error(ctx, "allocated id already in use", "user_id", id, "existing", len(all))
		a.console.Error(fmt.Sprintf("User ID %d is already in use: ids are allocated from the user count, so a deleted user can leave a gap that collides.", id))
		return fmt.Errorf("%w: %d", common.ErrorIDCollision, id)
	case !errors.Is(err, common.ErrorNotFound):
		a.console.Error(err.Error())
		return fmt.Errorf("check user %d: %w", id, err)
	}

	outcome, err := a.protocol.Create(ctx, rec)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			a.console.Error(err.Error())
		}
		return err
	}
	if outcome == staging.OutcomeCanceled {
		a.console.Warning("User creation canceled.")
		return common.ErrorCanceled
	}

	a.user = rec
	a.console.Success("User created successfully.")
	a.console.Success("Redirecting to main menu...")
	return nil
}

func (a *App) askBasicInfo() (models.Record, error) {
	a.console.Println("\n--- New User Setup ---")

	basic := models.Record{}
	for _, p := range basicPrompts {
		if models.IsNumericField(p.field) {
			n, err := a.console.AskNumber(p.prompt)
			if err != nil {
				return nil, err
			}
			basic[p.field] = n
			continue
		}
		s, err := a.console.Ask(p.prompt)
		if err != nil {
			return nil, err
		}
		basic[p.field] = s
	}
	return basic, nil
}

func (a *App) askClearance() (models.Clearance, error) {
	a.console.Println("\nClearance Levels:")
	a.console.Println("1. Admin")
	a.console.Println("2. User")
	a.console.Println("3. Guest")

	for {
		choice, err := a.console.Ask("Select clearance level (1-3): ")
		if err != nil {
			return "", err
		}
		switch choice {
		case "1":
			return models.ClearanceAdmin, nil
		case "2":
			return models.ClearanceUser, nil
		case "3":
			return models.ClearanceGuest, nil
		}
		a.console.Println("Invalid choice. Please select 1, 2, or 3.")
	}
}
