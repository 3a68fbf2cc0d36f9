package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/client/models"
	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register prompts for name, email and password and creates an account.
// The server answers with a token, so a successful registration also logs
// the user in and saves the session.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.api.Register(ctx, name, email, password)
	if err != nil {
		return a.report(ctx, err)
	}
	a.setMode(ModeOnline)

	if err := a.saveSession(ctx, u.Email); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "Registered and logged in as %s\n", u.Email)
	return nil
}

// Login prompts for credentials, authenticates and saves the session so
// the next start does not ask again while the token is valid.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Login(ctx, email, password); err != nil {
		return a.report(ctx, err)
	}
	a.setMode(ModeOnline)

	if err := a.saveSession(ctx, common.NormalizeEmail(email)); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout forgets the token locally. Tokens are stateless, so the server is
// not contacted.
func (a *App) Logout(ctx context.Context) error {
	if err := a.forgetSession(ctx); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	u, err := a.api.Profile(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	printUser(a, u)
	return nil
}

// EditProfile asks for every profile field; empty answers leave a field
// unchanged. Changing the password needs the current one.
func (a *App) EditProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email (empty to keep)", a.out)
	if err != nil {
		return err
	}
	newPassword, err := getPassword("New password (empty to keep)", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	upd := models.ProfileUpdate{Name: optional(name), Email: optional(email)}
	if len(newPassword) > 0 {
		current, err := getPassword("Current password", a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(current)
		upd.NewPassword = optional(string(newPassword))
		upd.CurrentPassword = optional(string(current))
	}

	u, err := a.api.UpdateProfile(ctx, upd)
	if err != nil {
		return a.report(ctx, err)
	}
	if a.email != "" && u.Email != a.email {
		if err := a.saveSession(ctx, u.Email); err != nil {
			return a.report(ctx, err)
		}
	}
	fmt.Fprintln(a.out, "Profile updated")
	printUser(a, u)
	return nil
}

func printUser(a *App, u *models.User) {
	fmt.Fprintf(a.out, "ID: %s\nName: %s\nEmail: %s\nCreated: %s\n",
		u.ID, u.Name, u.Email, u.CreatedAt.Local().Format("2006-01-02 15:04"))
}
