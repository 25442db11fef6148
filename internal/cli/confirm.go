package cli

import (
	"context"

	"github.com/dmitrijs2005/gophroster/internal/models"
)

// ConfirmChanges shows the staged record and asks for a y/n commit decision.
func (c *Console) ConfirmChanges(ctx context.Context, preview models.Record) (bool, error) {
	c.Header("Review Pending Changes")
	c.Record(preview)
	c.Println("\nDo you want to commit these changes?")
	return c.AskYesNo("Confirm (y/n): ")
}

func (c *Console) ConfirmDelete(ctx context.Context, id int64) (bool, error) {
	c.Header("Confirm Delete")
	c.Printf("You are about to delete user with ID: %d\n", id)
	return c.AskYesNo("Are you absolutely sure? (y/n): ")
}
