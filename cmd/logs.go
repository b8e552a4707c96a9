// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"

	"github.com/azure/acactl/cmd/actions"
	"github.com/azure/acactl/pkg/apps"
)

type logsAction struct {
	manager *apps.Manager
	filter  apps.Filter
}

func newLogsAction(manager *apps.Manager, filter apps.Filter) actions.Action {
	return &logsAction{
		manager: manager,
		filter:  filter,
	}
}

func (a *logsAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	return nil, a.manager.FollowLogs(ctx, a.filter)
}
