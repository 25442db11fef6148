package cli

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/gophroster/internal/logging"
)

// menuIface is the command surface of the main menu. App satisfies it; tests
// use a recording stub.
type menuIface interface {
	RetrieveAll(ctx context.Context) error
	UpdateUser(ctx context.Context) error
	DeleteUser(ctx context.Context) error
}

// runMenu shows the main menu until the operator chooses Exit (nil) or input
// ends (io.EOF). A failing command is reported and the loop continues.
func runMenu(ctx context.Context, a menuIface, c *Console, log logging.Logger) error {
	for {
		c.Header("CRUD Operations")
		c.Println("\nChoose an operation:")
		c.Println("1. Retrieve all users")
		c.Println("2. Update a user")
		c.Println("3. Delete a user")
		c.Println("4. Exit")

		choice, err := c.Ask("Enter choice (1-4): ")
		if err != nil {
			return err
		}

		var cmd string
		switch choice {
		case "1":
			cmd, err = "retrieve", a.RetrieveAll(ctx)
		case "2":
			cmd, err = "update", a.UpdateUser(ctx)
		case "3":
			cmd, err = "delete", a.DeleteUser(ctx)
		case "4":
			c.Goodbye()
			return nil
		default:
			c.Warning("Invalid choice. Try again.")
			continue
		}

		if errors.Is(err, io.EOF) {
			return err
		}
		if err != nil {
			log.Error(ctx, "command failed", "command", cmd, "error", err)
			c.Error(err.Error())
		}
	}
}
