package cli

import (
	"fmt"

	"github.com/consistencyhq/consistency-cli/internal/config"
	"github.com/consistencyhq/consistency-cli/internal/mock"
)

type MockCmd struct {
	On     MockOnCmd     `cmd:"" help:"Route API requests to the built-in mock backend."`
	Off    MockOffCmd    `cmd:"" help:"Send API requests to the real backend."`
	Status MockStatusCmd `cmd:"" help:"Show whether the mock backend is active." default:"1"`
}

type MockOnCmd struct{}

func (c *MockOnCmd) Run(ctx *Context) error {
	if err := config.SetMockEnabled(config.ConfigFilePath(), true); err != nil {
		return err
	}

	mock.Enable(ctx.API.HTTPClient(), mock.NewFixtures(), ctx.Config.API.BaseURL)
	ctx.Config.Mock.Enabled = true

	fmt.Println("🧪 Mock backend enabled. Fixture data will be served until you run 'consistency mock off'.")
	return nil
}

type MockOffCmd struct{}

func (c *MockOffCmd) Run(ctx *Context) error {
	if err := config.SetMockEnabled(config.ConfigFilePath(), false); err != nil {
		return err
	}

	mock.Disable(ctx.API.HTTPClient())
	ctx.Config.Mock.Enabled = false

	fmt.Println("Mock backend disabled. Requests go to the real backend.")
	return nil
}

type MockStatusCmd struct{}

func (c *MockStatusCmd) Run(ctx *Context) error {
	if mock.Enabled(ctx.API.HTTPClient()) {
		fmt.Println("Mock backend: on")
	} else {
		fmt.Println("Mock backend: off")
	}
	return nil
}
