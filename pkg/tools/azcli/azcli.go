// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azcli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/azure/acactl/internal"
	"github.com/azure/acactl/pkg/azure"
	"github.com/azure/acactl/pkg/exec"
	"github.com/azure/acactl/pkg/tools"
)

var (
	ErrAzCliNotInstalled = errors.New("az cli is not installed")
	ErrAzCliNotLoggedIn  = errors.New("az cli is not logged in")
)

const toolName = "Azure CLI"

type AzCli interface {
	tools.ExternalTool

	// SetUserAgent sets the user agent that's sent with each call to the Azure
	// CLI via the `AZURE_HTTP_USER_AGENT` environment variable.
	SetUserAgent(userAgent string)

	// UserAgent gets the currently configured user agent
	UserAgent() string

	// ListAccounts returns every subscription visible to the logged in account, across all tenants.
	ListAccounts(ctx context.Context) ([]AzCliSubscriptionInfo, error)

	// FollowContainerAppLogs streams the console logs of a container app to the terminal
	// until the command is interrupted.
	FollowContainerAppLogs(ctx context.Context, app *azure.ContainerAppIdParts) error
}

func NewAzCli(commandRunner exec.CommandRunner) AzCli {
	return &azCli{
		commandRunner: commandRunner,
		userAgent:     internal.UserAgent(),
	}
}

type azCli struct {
	commandRunner exec.CommandRunner
	userAgent     string
}

func (cli *azCli) Name() string {
	return toolName
}

func (cli *azCli) InstallUrl() string {
	return "https://learn.microsoft.com/cli/azure/install-azure-cli"
}

func (cli *azCli) CheckInstalled(ctx context.Context) error {
	if err := cli.commandRunner.ToolInPath("az"); err != nil {
		return &tools.ExternalToolError{
			Tool: toolName,
			Err: &internal.ErrorWithSuggestion{
				Err:        ErrAzCliNotInstalled,
				Suggestion: fmt.Sprintf("Install the Azure CLI from %s", cli.InstallUrl()),
			},
		}
	}

	return nil
}

// SetUserAgent sets the user agent that's sent with each call to the Azure
// CLI via the `AZURE_HTTP_USER_AGENT` environment variable.
func (cli *azCli) SetUserAgent(userAgent string) {
	cli.userAgent = userAgent
}

func (cli *azCli) UserAgent() string {
	return cli.userAgent
}

func (cli *azCli) newRunArgs(args ...string) exec.RunArgs {
	return exec.NewRunArgs("az", args...).
		WithEnv([]string{fmt.Sprintf("AZURE_HTTP_USER_AGENT=%s", cli.userAgent)})
}

func (cli *azCli) runAzCommand(ctx context.Context, args ...string) (exec.RunResult, error) {
	if err := cli.CheckInstalled(ctx); err != nil {
		return exec.RunResult{}, err
	}

	res, err := cli.commandRunner.Run(ctx, cli.newRunArgs(args...))
	if err != nil {
		if isNotLoggedInMessage(res.Stderr) {
			return res, &tools.ExternalToolError{
				Tool: toolName,
				Err: &internal.ErrorWithSuggestion{
					Err:        ErrAzCliNotLoggedIn,
					Suggestion: "Run `az login` to sign in to Azure",
				},
			}
		}

		return res, &tools.ExternalToolError{
			Tool: toolName,
			Err:  fmt.Errorf("failed running az %s: %w", strings.Join(args, " "), err),
		}
	}

	return res, nil
}

func isNotLoggedInMessage(s string) bool {
	return strings.Contains(s, "Please run 'az login' to setup account.") ||
		strings.Contains(s, "Please run 'az login' to access your accounts.")
}
