// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/azure/acactl/cmd/actions"
	"github.com/azure/acactl/pkg/apps"
	"github.com/azure/acactl/pkg/input"
	"github.com/azure/acactl/pkg/output"
)

// lifecycleAction shows the apps an operation would touch and applies it once the user confirms.
type lifecycleAction struct {
	operation apps.Operation
	manager   *apps.Manager
	filter    apps.Filter
	console   input.Console
	formatter output.Formatter
	writer    io.Writer
}

func newLifecycleAction(operation apps.Operation) any {
	return func(
		manager *apps.Manager,
		filter apps.Filter,
		console input.Console,
		formatter output.Formatter,
		writer io.Writer,
	) actions.Action {
		return &lifecycleAction{
			operation: operation,
			manager:   manager,
			filter:    filter,
			console:   console,
			formatter: formatter,
			writer:    writer,
		}
	}
}

func (a *lifecycleAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	matching, err := a.manager.List(ctx, a.filter)
	if err != nil {
		return nil, err
	}

	if err := apps.Present(a.formatter, a.writer, matching, apps.PresentOptions{}); err != nil {
		return nil, err
	}

	if len(matching) == 0 {
		a.console.Message(ctx, "no apps found")
		return nil, nil
	}

	confirmed, err := a.console.Confirm(ctx, input.ConsoleOptions{
		Message: fmt.Sprintf("Are you sure you want to %s these apps? [y/N]", a.operation),
	})
	if err != nil {
		return nil, err
	}

	if !confirmed {
		return nil, nil
	}

	count, err := a.manager.Apply(ctx, a.operation, a.filter)
	if err != nil {
		return nil, err
	}

	return &actions.ActionResult{
		Message: &actions.ResultMessage{
			Header: fmt.Sprintf("Done. %s %d apps.", a.operation.Past(), count),
		},
	}, nil
}
