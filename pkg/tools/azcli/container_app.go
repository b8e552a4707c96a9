// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azcli

import (
	"context"
	"errors"
	"fmt"

	"github.com/azure/acactl/pkg/azure"
	"github.com/azure/acactl/pkg/exec"
)

func (cli *azCli) FollowContainerAppLogs(ctx context.Context, app *azure.ContainerAppIdParts) error {
	if err := cli.CheckInstalled(ctx); err != nil {
		return err
	}

	runArgs := cli.newRunArgs(
		"containerapp", "logs", "show",
		"--subscription", app.SubscriptionId,
		"--resource-group", app.ResourceGroupName,
		"--name", app.Name,
		"--follow",
		"--format", "text",
	).WithInteractive(true)

	_, err := cli.commandRunner.Run(ctx, runArgs)

	// Interrupting the stream is the normal way out.
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode == 130 {
		return nil
	}

	if err != nil {
		return fmt.Errorf("following logs for container app '%s': %w", app.Name, err)
	}

	return nil
}
