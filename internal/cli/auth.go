package cli

import (
	"context"
	"os"

	"github.com/wardydev/bri-finder-admin/internal/common"
)

// getSimpleText, getTextWithDefault and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
)

// Login prompts for credentials and authenticates. Auth failures are the one
// place backend messages reach the operator directly. On success the profile
// is fetched for the prompt greeting and the locations screen is shown.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, password); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	if p, err := a.auth.Profile(ctx); err == nil {
		a.userName = p.Name
	} else {
		a.log.Warn(ctx, "profile fetch failed", "error", err)
	}

	return a.ShowLocations(ctx)
}

// Register prompts for a new account's details and creates it. The operator
// logs in afterwards, mirroring the register-then-login flow of the web UI.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, name, email, password); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Success! You can now log in.")
	return nil
}

// Whoami prints the logged-in account's name and email.
func (a *App) Whoami(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}
	p, err := a.auth.Profile(ctx)
	if err != nil {
		a.log.Error(ctx, "profile fetch failed", "error", err)
		return err
	}
	printlnFn(p.Name, "<"+p.Email+">")
	return nil
}

// Logout drops the session and clears the prompt greeting.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.userName = ""
	printlnFn("Logged out")
	return nil
}
