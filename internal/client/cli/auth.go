package cli

import (
	"context"
	"os"

	"github.com/fatih/color"

	"github.com/findra-app/findra-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password (twice) and creates an
// account. The new account is not signed in; login stays a separate step.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Repeat password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		printlnFn(color.RedString("Passwords do not match."))
		return nil
	}

	user, err := a.auth.Register(ctx, email, password)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printlnFn(color.GreenString("Account %s created. Use 'login' to sign in.", user.Email))
	return nil
}

// Login prompts for credentials, signs in and loads the identity. On
// success the unread notification badge is shown right away.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	a.user = &user
	printlnFn(color.GreenString("Signed in as %s", user.Email))
	a.showUnreadBadge(ctx)
	return nil
}

// Logout invalidates the refresh token server-side and clears the local
// session either way.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.reportError(ctx, err)
	}
	a.forgetSession()
	printlnFn("Signed out.")
	return nil
}

// LogoutAll revokes every session for the account, including ones on
// other devices, then drops the local session.
func (a *App) LogoutAll(ctx context.Context) error {
	if err := a.auth.LogoutAll(ctx); err != nil {
		a.reportError(ctx, err)
	}
	a.forgetSession()
	printlnFn("Signed out everywhere.")
	return nil
}

// Whoami prints the signed-in identity and subscription level.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.auth.Me(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	a.user = &user
	printlnFn(user.Email, string(user.SubscriptionLevel))
	return nil
}

// ChangePassword prompts for the old and new password.
func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	if err := a.auth.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		a.reportError(ctx, err)
		return err
	}
	printlnFn(color.GreenString("Password changed."))
	return nil
}

// ResetPassword starts or finishes the email reset flow, depending on
// whether the user already has a token from the reset email.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Reset token (leave empty to request one by email)", os.Stdout)
	if err != nil {
		return err
	}

	if token == "" {
		email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
		if err != nil {
			return err
		}
		if err := a.auth.RequestPasswordReset(ctx, email); err != nil {
			a.reportError(ctx, err)
			return err
		}
		printlnFn("If the address exists, a reset email is on its way.")
		return nil
	}

	newPassword, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	if err := a.auth.ConfirmPasswordReset(ctx, token, newPassword); err != nil {
		a.reportError(ctx, err)
		return err
	}
	printlnFn(color.GreenString("Password reset. Use 'login' to sign in."))
	return nil
}

// DeleteAccount asks for confirmation, then removes the account and local
// session.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "This permanently deletes your account. Type 'delete' to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "delete" {
		printlnFn("Aborted.")
		return nil
	}

	if err := a.auth.DeleteAccount(ctx); err != nil {
		a.reportError(ctx, err)
		return err
	}
	a.forgetSession()
	printlnFn("Account deleted.")
	return nil
}
