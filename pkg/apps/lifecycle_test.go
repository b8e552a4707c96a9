// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package apps

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func Test_Stop(t *testing.T) {
	h := newTestHarness(t)
	h.service.addApp(prodSubscriptionId, "rg-web", "web-1")
	h.service.addApp(stagingSubscriptionId, "rg-web", "web-2")
	h.service.addApp(stagingSubscriptionId, "rg-api", "api")

	count, err := h.manager.Stop(context.Background(), Filter{Name: "web-*"})
	require.NoError(t, err)
	require.Equal(t, 2, count)

	require.Contains(t, h.console.Output(), "Stopping 2 apps")
	require.ElementsMatch(t, []string{"stop-done web-1", "stop-done web-2"}, h.service.eventsWithPrefix("stop-done"))
	require.Empty(t, h.service.eventsWithPrefix("start"))
	require.Contains(t, h.progress.String(), "Stopping web-1 (rg-web)")
	require.Contains(t, h.progress.String(), "Stopping web-2 (rg-web)")
}

func Test_Start(t *testing.T) {
	h := newTestHarness(t)
	h.service.addApp(prodSubscriptionId, "rg-web", "web")

	count, err := h.manager.Apply(context.Background(), StartOperation, Filter{Name: "web"})
	require.NoError(t, err)
	require.Equal(t, 1, count)

	require.Contains(t, h.console.Output(), "Starting 1 apps")
	require.Equal(t, []string{"start-begin web", "start-done web"}, h.service.Events())
}

func Test_Lifecycle_NoMatches(t *testing.T) {
	h := newTestHarness(t)
	h.service.addApp(prodSubscriptionId, "rg-web", "web")

	count, err := h.manager.Stop(context.Background(), Filter{Name: "worker"})
	require.NoError(t, err)
	require.Zero(t, count)
	require.Contains(t, h.console.Output(), "Stopping 0 apps")
	require.Empty(t, h.service.Events())
}

func Test_Lifecycle_PartialFailure(t *testing.T) {
	h := newTestHarness(t)
	h.service.addApp(prodSubscriptionId, "rg-web", "web-1")
	h.service.addApp(prodSubscriptionId, "rg-web", "web-2")
	h.service.addApp(prodSubscriptionId, "rg-web", "web-3")
	stopErr := errors.New("conflict")
	h.service.failures["stop web-2"] = stopErr

	_, err := h.manager.Stop(context.Background(), Filter{Name: "web-*"})
	require.Error(t, err)
	require.True(t, errors.Is(err, stopErr))
	require.Len(t, multierr.Errors(err), 1)
	require.Contains(t, err.Error(), "Stopping web-2 (rg-web)")

	// Siblings of the failed app still run to completion.
	require.ElementsMatch(t, []string{"stop-done web-1", "stop-done web-3"}, h.service.eventsWithPrefix("stop-done"))
}

func Test_Restart(t *testing.T) {
	h := newTestHarness(t)
	names := []string{"web-1", "web-2", "web-3"}
	for _, name := range names {
		h.service.addApp(prodSubscriptionId, "rg-web", name)
	}

	count, err := h.manager.Restart(context.Background(), Filter{Name: "web-*"})
	require.NoError(t, err)
	require.Equal(t, 3, count)

	output := h.console.Output()
	require.Equal(t, []string{"Stopping 3 apps", "Starting 3 apps"}, output)

	events := h.service.Events()
	require.Len(t, events, 12)

	lastStopDone := -1
	firstStartBegin := len(events)
	for i, event := range events {
		switch {
		case slices.Contains([]string{"stop-done web-1", "stop-done web-2", "stop-done web-3"}, event):
			lastStopDone = max(lastStopDone, i)
		case slices.Contains([]string{"start-begin web-1", "start-begin web-2", "start-begin web-3"}, event):
			firstStartBegin = min(firstStartBegin, i)
		}
	}

	// Every start is issued after every stop has completed.
	require.Less(t, lastStopDone, firstStartBegin)

	for _, name := range names {
		require.Less(t, slices.Index(events, "stop-done "+name), slices.Index(events, "start-begin "+name))
	}
}

func Test_Restart_StopFailure(t *testing.T) {
	h := newTestHarness(t)
	h.service.addApp(prodSubscriptionId, "rg-web", "web-1")
	h.service.addApp(prodSubscriptionId, "rg-web", "web-2")
	h.service.failures["stop web-1"] = errors.New("conflict")

	count, err := h.manager.Restart(context.Background(), Filter{Name: "web-*"})
	require.Error(t, err)
	require.Zero(t, count)
	require.Contains(t, err.Error(), "restart aborted")

	require.Empty(t, h.service.eventsWithPrefix("start"))
	require.NotContains(t, h.console.Output(), "Starting 2 apps")
}

func Test_Apply_CountsAppsAtApplyTime(t *testing.T) {
	h := newTestHarness(t)
	h.service.addApp(prodSubscriptionId, "rg-web", "web-1")

	apps, err := h.manager.List(context.Background(), Filter{Name: "web-*"})
	require.NoError(t, err)
	require.Len(t, apps, 1)

	// An app created after the listing is still part of the batch.
	h.service.addApp(prodSubscriptionId, "rg-web", "web-2")

	count, err := h.manager.Apply(context.Background(), StopOperation, Filter{Name: "web-*"})
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Len(t, h.service.eventsWithPrefix("stop-done"), 2)
}

func Test_Apply_UnsupportedOperation(t *testing.T) {
	h := newTestHarness(t)
	_, err := h.manager.Apply(context.Background(), Operation("delete"), Filter{})
	require.Error(t, err)
	require.Empty(t, h.runner.Calls())
}
