// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package apps

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appcontainers/armappcontainers/v3"
	"github.com/azure/acactl/pkg/account"
	"github.com/azure/acactl/pkg/exec"
	"github.com/azure/acactl/pkg/tools/azcli"
	"github.com/azure/acactl/test/mocks/mockazsdk"
	"github.com/azure/acactl/test/mocks/mockexec"
	"github.com/azure/acactl/test/mocks/mockinput"
	"github.com/benbjohnson/clock"
)

const (
	prodSubscriptionId    = "00000000-0000-0000-0000-000000000001"
	sandboxSubscriptionId = "00000000-0000-0000-0000-000000000002"
	stagingSubscriptionId = "00000000-0000-0000-0000-000000000003"
)

var accountListJson = fmt.Sprintf(`[
  {"id": "%s", "name": "Prod", "tenantId": "tenant-1", "state": "Enabled", "isDefault": true},
  {"id": "%s", "name": "Test-Sandbox", "tenantId": "tenant-1", "state": "Enabled"},
  {"id": "%s", "name": "Staging", "tenantId": "tenant-2", "state": "Enabled"}
]`, prodSubscriptionId, sandboxSubscriptionId, stagingSubscriptionId)

// fakeContainerAppService serves apps from memory and records lifecycle calls in order.
type fakeContainerAppService struct {
	apps     map[string][]*armappcontainers.ContainerApp
	failures map[string]error

	mu        sync.Mutex
	listCalls []string
	events    []string
}

func newFakeContainerAppService() *fakeContainerAppService {
	return &fakeContainerAppService{
		apps:     map[string][]*armappcontainers.ContainerApp{},
		failures: map[string]error{},
	}
}

func (f *fakeContainerAppService) addApp(subscriptionId, resourceGroup, name string, images ...string) {
	f.apps[subscriptionId] = append(
		f.apps[subscriptionId],
		mockazsdk.NewContainerApp(
			subscriptionId, resourceGroup, name, "eastus", armappcontainers.ContainerAppRunningStatusRunning, images...,
		),
	)
}

func (f *fakeContainerAppService) record(event string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.events = append(f.events, event)
}

func (f *fakeContainerAppService) Events() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string{}, f.events...)
}

func (f *fakeContainerAppService) eventsWithPrefix(prefix string) []string {
	matching := []string{}
	for _, event := range f.Events() {
		if strings.HasPrefix(event, prefix) {
			matching = append(matching, event)
		}
	}

	return matching
}

func (f *fakeContainerAppService) List(
	ctx context.Context,
	subscriptionId string,
) ([]*armappcontainers.ContainerApp, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, subscriptionId)
	f.mu.Unlock()

	if err, has := f.failures["list "+subscriptionId]; has {
		return nil, err
	}

	return f.apps[subscriptionId], nil
}

func (f *fakeContainerAppService) Start(ctx context.Context, subscriptionId, resourceGroupName, appName string) error {
	return f.operate("start", appName)
}

func (f *fakeContainerAppService) Stop(ctx context.Context, subscriptionId, resourceGroupName, appName string) error {
	return f.operate("stop", appName)
}

func (f *fakeContainerAppService) operate(operation string, appName string) error {
	f.record(fmt.Sprintf("%s-begin %s", operation, appName))
	if err, has := f.failures[operation+" "+appName]; has {
		f.record(fmt.Sprintf("%s-failed %s", operation, appName))
		return err
	}

	f.record(fmt.Sprintf("%s-done %s", operation, appName))
	return nil
}

type testHarness struct {
	manager  *Manager
	service  *fakeContainerAppService
	runner   *mockexec.MockCommandRunner
	console  *mockinput.MockConsole
	progress *bytes.Buffer
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	runner := mockexec.NewMockCommandRunner()
	runner.When(func(args exec.RunArgs, command string) bool {
		return strings.HasPrefix(command, "az account list")
	}).Respond(exec.NewRunResult(0, accountListJson, ""))

	cli := azcli.NewAzCli(runner)
	service := newFakeContainerAppService()
	console := mockinput.NewMockConsole()
	progress := &bytes.Buffer{}

	manager := NewManager(
		account.NewSubscriptionsManager(cli),
		service,
		cli,
		console,
		NewTaskListBatchRunner(progress, clock.NewMock()),
	)

	return &testHarness{
		manager:  manager,
		service:  service,
		runner:   runner,
		console:  console,
		progress: progress,
	}
}

func (h *testHarness) logCalls() []exec.RunArgs {
	calls := []exec.RunArgs{}
	for _, call := range h.runner.Calls() {
		if len(call.Args) > 1 && call.Args[0] == "containerapp" && call.Args[1] == "logs" {
			calls = append(calls, call)
		}
	}

	return calls
}

func appNames(apps []*App) []string {
	names := make([]string, len(apps))
	for i, app := range apps {
		names[i] = app.Name()
	}

	return names
}
