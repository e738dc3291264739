// Package cli implements the interactive terminal client: auth against the
// backend plus the local saved-recipes and meal-planner collections.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tastebud-app/tastebud-backend/internal/client"
	"github.com/tastebud-app/tastebud-backend/internal/localstore"
	"github.com/tastebud-app/tastebud-backend/internal/models"
)

// App holds the client state for one interactive session.
type App struct {
	api    *client.API
	kv     *localstore.KV
	store  *localstore.Store
	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the API client and local store. A token persisted by a
// previous session is restored so the user stays signed in.
func NewApp(serverURL string, kv *localstore.KV) *App {
	api := client.New(serverURL)

	var token string
	if kv.Get(localstore.KeyUserToken, &token) && token != "" {
		api.SetToken(token)
	}

	return &App{
		api:    api,
		kv:     kv,
		store:  localstore.Open(kv),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run reads and dispatches commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "tastebud client. Type 'help' for commands.")

	for {
		fmt.Fprint(a.out, "> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout()
		case "profile":
			a.profile(ctx)
		case "search":
			a.search(ctx, strings.Join(args, " "))
		case "save":
			a.save(ctx, args)
		case "unsave":
			a.unsave(args)
		case "saved":
			a.listSaved()
		case "plan":
			a.plan(ctx, args)
		case "unplan":
			a.unplan(args)
		case "planner":
			a.listPlanner()
		case "exit", "quit":
			return
		default:
			fmt.Fprintf(a.out, "unknown command %q, type 'help'\n", cmd)
		}
	}
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `commands:
  register                 create an account
  login                    sign in
  logout                   sign out and forget the session
  profile                  show the signed-in user
  search <text>            search recipes
  save <id> [-c]           save a recipe (-c for a cocktail) for offline use
  unsave <id>              remove a saved item
  saved                    list saved items
  plan <id> <date> [meal]  schedule a saved recipe (date YYYY-MM-DD)
  unplan <item-id>         remove a planner entry
  planner                  list planner entries by date
  exit
`)
}

func (a *App) storeSession(token string, user models.PublicUser) {
	a.api.SetToken(token)
	if err := a.kv.Set(localstore.KeyUserToken, token); err != nil {
		fmt.Fprintf(a.out, "warning: could not persist session: %v\n", err)
	}
	if err := a.kv.Set(localstore.KeyUserData, user); err != nil {
		fmt.Fprintf(a.out, "warning: could not persist user data: %v\n", err)
	}
}
