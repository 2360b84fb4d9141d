package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// LoginAction signs the admin in and persists the session record.
func LoginAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	session, err := appCtx.Container.Sessions.Login(ctx, cmd.String("email"), cmd.String("password"))
	if err != nil {
		return err
	}

	fmt.Printf("Signed in as %s\n", session.Email)
	return nil
}

// LogoutAction clears the persisted session. No server call is made.
func LogoutAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := appCtx.Container.Sessions.Logout(); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}

	fmt.Println("Signed out")
	return nil
}

// WhoamiAction prints the current session, if any.
func WhoamiAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	session := appCtx.Container.Sessions.Current()
	if session == nil {
		fmt.Println("Not signed in")
		return nil
	}

	fmt.Printf("Signed in as %s (since %s)\n", session.Email, session.LoginTime.Format("2006-01-02 15:04"))
	return nil
}

// ChangePasswordAction submits the password-change form. Local
// validation runs before any request leaves the machine.
func ChangePasswordAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	return appCtx.Container.Sessions.ChangePassword(ctx,
		cmd.String("old-password"),
		cmd.String("new-password"),
		cmd.String("confirm-password"),
	)
}
