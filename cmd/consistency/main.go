package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/consistencyhq/consistency-cli/internal/api"
	"github.com/consistencyhq/consistency-cli/internal/cli"
	"github.com/consistencyhq/consistency-cli/internal/config"
	"github.com/consistencyhq/consistency-cli/internal/constants"
	apperrors "github.com/consistencyhq/consistency-cli/internal/errors"
	"github.com/consistencyhq/consistency-cli/internal/logger"
	"github.com/consistencyhq/consistency-cli/internal/mock"
	"github.com/consistencyhq/consistency-cli/internal/session"
	"github.com/consistencyhq/consistency-cli/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool `help:"Enable debug logging."`
	Mock    bool `help:"Serve fixture data instead of calling the real backend (this run only)."`

	Login    cli.LoginCmd    `cmd:"" help:"Sign in to your account."`
	Register cli.RegisterCmd `cmd:"" help:"Create a new account."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Sign out."`
	Whoami   cli.WhoamiCmd   `cmd:"" help:"Show the signed-in account."`
	Today    cli.TodayCmd    `cmd:"" help:"Show today's habits and an inspirational quote." default:"1"`
	Habits   cli.HabitCmd    `cmd:"" help:"Manage habits."`
	Checkin  cli.CheckinCmd  `cmd:"" help:"Log a check-in for a habit."`
	Goal     cli.GoalCmd     `cmd:"" help:"Manage goals."`
	Profile  cli.ProfileCmd  `cmd:"" help:"Show your consistency profile."`
	Mocks    cli.MockCmd     `cmd:"" name:"mock" help:"Control the built-in mock backend."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracking companion for building consistent routines"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := config.InitializePaths(); err != nil {
		apperrors.Fatal(err)
	}

	cfg, err := config.Load(config.ConfigFilePath(), config.DataDir())
	if err != nil {
		apperrors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: cfg.DataDir}); err != nil {
		apperrors.Fatal(err)
	}

	client := api.NewClient(cfg.API.BaseURL, nil)

	if cfg.Mock.Enabled || CLI.Mock {
		mock.Enable(client.HTTPClient(), mock.NewFixtures(), cfg.API.BaseURL)
	}

	mgr := session.NewManager(session.NewStore(cfg.DataDir), client, nil)
	mgr.Init()

	cache := storage.NewSQLiteCache(filepath.Join(cfg.DataDir, constants.CacheFileName))
	if err := cache.Init(); err != nil {
		apperrors.Fatal(err)
	}
	defer cache.Close()

	appCtx := &cli.Context{
		Config:  cfg,
		Session: mgr,
		API:     client,
		Cache:   cache,
	}

	if err := ctx.Run(appCtx); err != nil {
		cache.Close()
		apperrors.Fatal(err)
	}
}
