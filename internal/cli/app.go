package cli

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/gophroster/internal/common"
	"github.com/dmitrijs2005/gophroster/internal/logging"
	"github.com/dmitrijs2005/gophroster/internal/models"
	"github.com/dmitrijs2005/gophroster/internal/repositories/records"
	"github.com/dmitrijs2005/gophroster/internal/staging"
)

type State int

const (
	StateUninitialized State = iota
	StateAwaitingAuthDecision
	StateAuthenticating
	StateOnboarding
	StateMenuLoop
	StateTerminated
)

var stateNames = map[State]string{
	StateUninitialized:        "uninitialized",
	StateAwaitingAuthDecision: "awaiting-auth-decision",
	StateAuthenticating:       "authenticating",
	StateOnboarding:           "onboarding",
	StateMenuLoop:             "menu-loop",
	StateTerminated:           "terminated",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// App drives one operator session against a record store. Reads go to the
// repository directly, writes only through protocol.
type App struct {
	repo     records.Repository
	protocol *staging.Protocol
	console  *Console
	log      logging.Logger

	state State
	user  models.Record
}

func NewApp(repo records.Repository, console *Console, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		repo:     repo,
		protocol: staging.NewProtocol(repo, console, log),
		console:  console,
		log:      log,
		state:    StateAwaitingAuthDecision,
	}
}

func (a *App) State() State { return a.state }

// User returns the record of the authenticated or newly created user.
func (a *App) User() models.Record { return a.user }

func (a *App) setState(s State) {
	if a.state != s {
		a.log.Debug(context.Background(), "session state", "from", a.state.String(), "to", s.String())
		a.state = s
	}
}

// Run executes the session to completion. It returns nil after the operator
// chooses Exit, common.ErrorUnauthorized or common.ErrorCanceled when the
// session ends before the menu, and io.EOF when input runs out.
func (a *App) Run(ctx context.Context) error {
	defer a.setState(StateTerminated)

	a.console.Header("User Login")
	returning, err := a.console.AskYesNo("Are you a returning user? (y/n): ")
	if err != nil {
		return a.abort(ctx, err)
	}

	if returning {
		a.setState(StateAuthenticating)
		err = a.Login(ctx)
	} else {
		a.setState(StateOnboarding)
		err = a.Onboard(ctx)
	}
	if err != nil {
		return a.abort(ctx, err)
	}

	a.setState(StateMenuLoop)
	if err := runMenu(ctx, a, a.console, a.log); err != nil {
		return a.abort(ctx, err)
	}
	return nil
}

func (a *App) abort(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, io.EOF):
		a.log.Info(ctx, "input closed", "state", a.state.String())
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrorCanceled):
		a.log.Warn(ctx, "session ended", "state", a.state.String(), "reason", err.Error())
	default:
		a.log.Error(ctx, "session failed", "state", a.state.String(), "error", err)
	}
	return err
}
