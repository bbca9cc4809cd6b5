package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/client"
)

func (a *App) cmdLogin(ctx context.Context) {
	email, err := GetSimpleText(a.in, "Email", a.out)
	if err != nil || email == "" {
		fmt.Fprintln(a.out, "login cancelled")
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "reading password", "error", err)
		fmt.Fprintln(a.out, "login cancelled")
		return
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Fprintln(a.out, "wrong email or password")
			return
		}
		a.log.Error(ctx, "login", "error", err)
		fmt.Fprintln(a.out, "login failed")
		return
	}
	fmt.Fprintf(a.out, "signed in as %s\n", email)

	a.admin.Reset()
	a.navigate(ctx, a.route)
}

func (a *App) cmdLogout(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout", "error", err)
	}
	a.admin.Reset()
	fmt.Fprintln(a.out, "signed out")
	if a.route == RouteAdmin {
		a.navigate(ctx, RouteAdmin)
	}
}

func (a *App) cmdWhoami() {
	id, loading := a.session.Current()
	switch {
	case loading:
		fmt.Fprintln(a.out, "checking session...")
	case id == nil:
		fmt.Fprintln(a.out, "not signed in")
	default:
		fmt.Fprintln(a.out, id.Email)
	}
}
