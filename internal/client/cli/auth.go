package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/portfolio/internal/client/session"
)

func newLoginCmd(a *App) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as the administrator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.login(cmd.Context(), email)
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "administrator email (prompted when empty)")
	return cmd
}

func (a *App) login(ctx context.Context, email string) error {
	var err error
	if strings.TrimSpace(email) == "" {
		email, err = GetSimpleText(a.in, "Email", a.out)
		if err != nil {
			return err
		}
	}
	password, err := GetPassword(a.in, a.inFd, a.out)
	if err != nil {
		return err
	}

	res := a.session.Login(ctx, email, password)
	if !res.Success {
		return errors.New(res.Message)
	}
	fmt.Fprintln(a.out, res.Message)
	return nil
}

func newLogoutCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("clear session: %w", err)
			}
			fmt.Fprintln(a.out, "Logged out")
			return nil
		},
	}
}

func newStatusCmd(a *App) *cobra.Command {
	var local bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a valid session is stored",
		Long: `status verifies the stored token with the server. With --local only
the token's expiry is checked and no request is made.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if local {
				if a.auth.IsAuthenticated(ctx) {
					fmt.Fprintln(a.out, "token present and not expired")
				} else {
					fmt.Fprintln(a.out, "not logged in")
				}
				return nil
			}
			s := a.session.Check(ctx)
			printSession(a, s)
			return nil
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "check token expiry only")
	return cmd
}

func printSession(a *App, s session.Snapshot) {
	if !s.IsAuthenticated || s.User == nil {
		fmt.Fprintf(a.out, "%s\n", s.State)
		return
	}
	fmt.Fprintf(a.out, "%s as %s (%s)\n", s.State, s.User.Email, s.User.Role)
}
