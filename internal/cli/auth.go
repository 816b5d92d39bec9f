package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/consistencyhq/consistency-cli/internal/api"
	"github.com/consistencyhq/consistency-cli/internal/session"
)

type LoginCmd struct {
	Email    string `help:"Account email address."`
	Password string `help:"Account password (prompted when omitted)."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if err := ctx.GuardRoute(session.RouteLogin); err != nil {
		return err
	}

	if c.Email == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Email").
					Value(&c.Email).
					Validate(validateEmail),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&c.Password).
					Validate(validateRequired("password")),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("login form error: %w", err)
		}
	}

	resp, err := ctx.API.Login(context.Background(), api.LoginRequest{
		Email:    c.Email,
		Password: c.Password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	ctx.Session.SignIn(resp.User, resp.Token)
	if ctx.Session.State() != session.StateSignedIn {
		return fmt.Errorf("login succeeded but the session could not be saved, check the log for details")
	}

	fmt.Printf("✅ Welcome back, %s!\n", resp.User.Name)
	return nil
}

type RegisterCmd struct {
	Name  string `help:"Display name."`
	Email string `help:"Account email address."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	if err := ctx.GuardRoute(session.RouteRegister); err != nil {
		return err
	}

	var password, confirm string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&c.Name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Email").
				Value(&c.Email).
				Validate(validateEmail),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(validateRequired("password")),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("registration form error: %w", err)
	}

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	resp, err := ctx.API.Register(context.Background(), api.RegisterRequest{
		Name:            c.Name,
		Email:           c.Email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	ctx.Session.SignIn(resp.User, resp.Token)
	if ctx.Session.State() != session.StateSignedIn {
		return fmt.Errorf("registration succeeded but the session could not be saved, check the log for details")
	}

	fmt.Printf("🎉 Account created. Welcome, %s!\n", resp.User.Name)
	return nil
}

type LogoutCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.GuardRoute(session.RouteToday); err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title("Sign out?").
			Description("Your cached habits stay on this machine.").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return fmt.Errorf("confirmation prompt error: %w", err)
		}
		if !confirmed {
			fmt.Println("Logout cancelled.")
			return nil
		}
	}

	ctx.Session.SignOut()
	fmt.Println("👋 Signed out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	user, ok := ctx.Session.User()
	if !ok {
		fmt.Println("Not signed in.")
		return nil
	}

	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return nil
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(s, "@") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
