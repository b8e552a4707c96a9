// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"io"

	"github.com/azure/acactl/cmd/actions"
	"github.com/azure/acactl/pkg/apps"
	"github.com/azure/acactl/pkg/output"
)

type listAction struct {
	manager   *apps.Manager
	filter    apps.Filter
	formatter output.Formatter
	writer    io.Writer
}

func newListAction(
	manager *apps.Manager,
	filter apps.Filter,
	formatter output.Formatter,
	writer io.Writer,
) actions.Action {
	return &listAction{
		manager:   manager,
		filter:    filter,
		formatter: formatter,
		writer:    writer,
	}
}

func (a *listAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	matching, err := a.manager.List(ctx, a.filter)
	if err != nil {
		return nil, err
	}

	if err := apps.Present(a.formatter, a.writer, matching, apps.PresentOptions{}); err != nil {
		return nil, err
	}

	return nil, nil
}
