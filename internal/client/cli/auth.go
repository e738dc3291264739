package cli

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tastebud-app/tastebud-backend/internal/localstore"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

func (a *App) promptLine(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return trimInput(line), nil
}

func (a *App) promptPassword() (string, error) {
	fmt.Fprint(a.out, "Password: ")
	pw, err := readPassword()
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

func (a *App) register(ctx context.Context) {
	email, err := a.promptLine("Email: ")
	if err != nil {
		return
	}
	password, err := a.promptPassword()
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	name, err := a.promptLine("Full name (optional): ")
	if err != nil {
		return
	}

	var fullName *string
	if name != "" {
		fullName = &name
	}

	session, err := a.api.Register(ctx, email, password, fullName)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	a.storeSession(session.Token, session.User)
	fmt.Fprintf(a.out, "registered and signed in as %s\n", session.User.Email)
}

func (a *App) login(ctx context.Context) {
	email, err := a.promptLine("Email: ")
	if err != nil {
		return
	}
	password, err := a.promptPassword()
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	session, err := a.api.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	a.storeSession(session.Token, session.User)
	fmt.Fprintf(a.out, "signed in as %s\n", session.User.Email)
}

func (a *App) logout() {
	a.api.SetToken("")
	if err := a.kv.Delete(localstore.KeyUserToken); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if err := a.kv.Delete(localstore.KeyUserData); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintln(a.out, "signed out")
}

func (a *App) profile(ctx context.Context) {
	user, err := a.api.Profile(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintf(a.out, "id:      %s\n", user.ID)
	fmt.Fprintf(a.out, "email:   %s\n", user.Email)
	if user.FullName != nil {
		fmt.Fprintf(a.out, "name:    %s\n", *user.FullName)
	}
	if user.CreatedAt != "" {
		fmt.Fprintf(a.out, "created: %s\n", user.CreatedAt)
	}
}
