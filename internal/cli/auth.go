package cli

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophroster/internal/common"
	"github.com/dmitrijs2005/gophroster/internal/models"
)

// Login identifies a returning user by id and verifies them with the email
// or phone stored on their record. Any failure ends with
// common.ErrorUnauthorized; there is no retry and no fallback to onboarding.
func (a *App) Login(ctx context.Context) error {
	raw, err := a.console.Ask("\nEnter user ID: ")
	if err != nil {
		return err
	}
	id, err := models.ParseID(raw)
	if err != nil {
		return a.denied(ctx, "user id is not a number")
	}

	rec, err := a.repo.Get(ctx, models.Key(id))
	if errors.Is(err, common.ErrorNotFound) {
		return a.denied(ctx, "unknown user", "user_id", id)
	}
	if err != nil {
		a.console.Error(err.Error())
		return fmt.Errorf("load user %d: %w", id, err)
	}

	a.console.Println("\nVerify your identity:")
	a.console.Println("1. Email")
	a.console.Println("2. Phone")
	choice, err := a.console.Ask("Select verification method (1-2): ")
	if err != nil {
		return err
	}

	var field, prompt string
	switch choice {
	case "1":
		field, prompt = models.FieldEmail, "Email: "
	case "2":
		field, prompt = models.FieldPhone, "Phone number: "
	default:
		return a.denied(ctx, "invalid verification method", "user_id", id)
	}

	secret, err := a.console.AskSecret(prompt)
	if err != nil {
		return err
	}
	if !secretEqual(secret, rec.String(field)) {
		return a.denied(ctx, "verification mismatch", "user_id", id, "method", field)
	}

	a.user = rec
	a.log.Info(ctx, "user authenticated", "user_id", id, "method", field)
	a.console.Success(fmt.Sprintf("Welcome back, %s.", rec.String(models.FieldFirstName)))
	return nil
}

func (a *App) denied(ctx context.Context, reason string, kv ...any) error {
	a.log.Warn(ctx, "authentication failed", append([]any{"reason", reason}, kv...)...)
	a.console.Warning("Authentication failed.")
	return fmt.Errorf("%w: %s", common.ErrorUnauthorized, reason)
}

// secretEqual is an exact comparison that runs in constant time.
func secretEqual(given, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(given), []byte(stored)) == 1
}
