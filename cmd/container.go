// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/azure/acactl/cmd/actions"
	"github.com/azure/acactl/internal"
	"github.com/azure/acactl/pkg/account"
	"github.com/azure/acactl/pkg/apps"
	"github.com/azure/acactl/pkg/azsdk"
	"github.com/azure/acactl/pkg/config"
	"github.com/azure/acactl/pkg/containerapps"
	"github.com/azure/acactl/pkg/exec"
	"github.com/azure/acactl/pkg/input"
	"github.com/azure/acactl/pkg/ioc"
	"github.com/azure/acactl/pkg/output"
	"github.com/azure/acactl/pkg/tools/azcli"
	"github.com/benbjohnson/clock"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
)

// Registers the dependencies shared by every mode.
// Expects context.Context, *cobra.Command, *internal.GlobalCommandOptions and *rootFlags to be registered.
func registerCommonDependencies(container *ioc.NestedContainer) {
	container.RegisterSingleton(output.GetCommandFormatter)

	container.RegisterSingleton(func(
		rootOptions *internal.GlobalCommandOptions,
		formatter output.Formatter,
		cmd *cobra.Command) input.Console {
		// Keep stdout clean for JSON output.
		stdout := cmd.OutOrStdout()
		if formatter.Kind() == output.JsonFormat {
			stdout = cmd.ErrOrStderr()
		}

		isTerminal := cmd.OutOrStdout() == os.Stdout &&
			cmd.InOrStdin() == os.Stdin &&
			input.IsTerminal(os.Stdout.Fd(), os.Stdin.Fd())

		return input.NewConsole(rootOptions.NoPrompt, isTerminal, input.ConsoleHandles{
			Stdin:  cmd.InOrStdin(),
			Stdout: stdout,
			Stderr: cmd.ErrOrStderr(),
		})
	})

	container.RegisterSingleton(func(cmd *cobra.Command) io.Writer {
		writer := cmd.OutOrStdout()

		if os.Getenv("NO_COLOR") != "" {
			writer = colorable.NewNonColorable(writer)
		}

		return writer
	})

	container.RegisterSingleton(func(rootOptions *internal.GlobalCommandOptions, cmd *cobra.Command) exec.CommandRunner {
		return exec.NewCommandRunner(&exec.RunnerOptions{
			Stdin:        cmd.InOrStdin(),
			Stdout:       cmd.OutOrStdout(),
			Stderr:       cmd.ErrOrStderr(),
			DebugLogging: rootOptions.EnableDebugLogging,
		})
	})

	// Tools
	container.RegisterSingleton(func(commandRunner exec.CommandRunner) azcli.AzCli {
		cli := azcli.NewAzCli(commandRunner)
		cli.SetUserAgent(internal.UserAgent())
		return cli
	})

	// Subscriptions & credentials
	container.RegisterSingleton(account.NewSubscriptionsManager)
	container.RegisterSingleton(func(manager *account.SubscriptionsManager) account.SubscriptionTenantResolver {
		return manager
	})
	container.RegisterSingleton(func(manager *account.SubscriptionsManager) apps.SubscriptionLister {
		return manager
	})
	container.RegisterSingleton(func() account.MultiTenantCredentialProvider {
		return account.NewCliCredentialProvider(account.NewAzureCliCredential)
	})
	container.RegisterSingleton(account.NewSubscriptionCredentialProvider)

	// Azure SDK
	container.RegisterSingleton(func(ctx context.Context) *arm.ClientOptions {
		return azsdk.DefaultClientOptionsBuilder(ctx, http.DefaultClient, internal.UserAgent()).BuildArmClientOptions()
	})
	container.RegisterSingleton(containerapps.NewContainerAppService)

	// Apps
	container.RegisterSingleton(func(console input.Console) apps.BatchRunner {
		return apps.NewTaskListBatchRunner(console.Handles().Stdout, clock.New())
	})
	container.RegisterSingleton(apps.NewManager)

	// User config
	container.RegisterSingleton(config.NewManager)
	container.RegisterSingleton(config.NewFileConfigManager)
	container.RegisterSingleton(config.NewUserConfigManager)
	container.RegisterSingleton(func(userConfigManager config.UserConfigManager) (config.Config, error) {
		userConfig, err := userConfigManager.Load()
		if err != nil {
			return nil, fmt.Errorf("loading user config: %w", err)
		}

		return userConfig, nil
	})
	container.RegisterSingleton(func(flags *rootFlags, userConfig config.Config) apps.Filter {
		return flags.Filter(userConfig)
	})
}

// Registers one named action per mode.
func registerActions(container *ioc.NestedContainer) error {
	resolvers := map[Mode]any{
		ListMode:    newListAction,
		StopMode:    newLifecycleAction(apps.StopOperation),
		StartMode:   newLifecycleAction(apps.StartOperation),
		RestartMode: newLifecycleAction(apps.RestartOperation),
		LogsMode:    newLogsAction,
	}

	for mode, resolver := range resolvers {
		if err := container.RegisterNamedTransient(string(mode), resolver); err != nil {
			return fmt.Errorf("registering %s action: %w", mode, err)
		}
	}

	return nil
}

func resolveAction(container *ioc.NestedContainer, mode Mode) (actions.Action, error) {
	var action actions.Action
	if err := container.ResolveNamed(string(mode), &action); err != nil {
		return nil, err
	}

	return action, nil
}
