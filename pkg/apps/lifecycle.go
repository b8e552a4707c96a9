// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package apps

import (
	"context"
	"fmt"

	"github.com/azure/acactl/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
)

// Operation is a lifecycle change applied to container apps.
type Operation string

const (
	StopOperation    Operation = "stop"
	StartOperation   Operation = "start"
	RestartOperation Operation = "restart"
)

// Past returns the capitalized past tense of the operation, for completion messages.
func (o Operation) Past() string {
	switch o {
	case StopOperation:
		return "Stopped"
	case StartOperation:
		return "Started"
	default:
		return "Restarted"
	}
}

// Progressive form used in output, e.g. "Stopping 3 apps".
func (o Operation) gerund() string {
	switch o {
	case StopOperation:
		return "Stopping"
	case StartOperation:
		return "Starting"
	default:
		return "Restarting"
	}
}

// Stop stops every app matching filter and waits for all of them.
// It returns the number of apps the batch covered.
func (m *Manager) Stop(ctx context.Context, filter Filter) (int, error) {
	return m.runOperation(ctx, StopOperation, filter)
}

// Start starts every app matching filter and waits for all of them.
// It returns the number of apps the batch covered.
func (m *Manager) Start(ctx context.Context, filter Filter) (int, error) {
	return m.runOperation(ctx, StartOperation, filter)
}

// Restart stops the matching apps and, once every stop has completed, starts them again.
// Nothing is started when any stop failed. The count is that of the start batch.
func (m *Manager) Restart(ctx context.Context, filter Filter) (int, error) {
	if _, err := m.Stop(ctx, filter); err != nil {
		return 0, fmt.Errorf("restart aborted, not all apps stopped: %w", err)
	}

	return m.Start(ctx, filter)
}

// Apply runs operation against the apps matching filter and returns the number of apps processed.
func (m *Manager) Apply(ctx context.Context, operation Operation, filter Filter) (int, error) {
	switch operation {
	case StopOperation:
		return m.Stop(ctx, filter)
	case StartOperation:
		return m.Start(ctx, filter)
	case RestartOperation:
		return m.Restart(ctx, filter)
	default:
		return 0, fmt.Errorf("unsupported operation '%s'", operation)
	}
}

func (m *Manager) runOperation(ctx context.Context, operation Operation, filter Filter) (int, error) {
	apps, err := m.List(ctx, filter)
	if err != nil {
		return 0, err
	}

	ctx, span := tracing.Start(ctx, "apps."+string(operation), attribute.Int("apps.count", len(apps)))
	defer span.End()

	m.console.Message(ctx, fmt.Sprintf("%s %d apps", operation.gerund(), len(apps)))

	tasks := make([]BatchTask, len(apps))
	for i, app := range apps {
		tasks[i] = BatchTask{
			Title: fmt.Sprintf("%s %s (%s)", operation.gerund(), app.Name(), app.Parts.ResourceGroupName),
			Action: func(ctx context.Context) error {
				return m.apply(ctx, operation, app)
			},
		}
	}

	if err := m.batchRunner.RunBatch(ctx, tasks); err != nil {
		span.RecordError(err)
		return len(apps), err
	}

	return len(apps), nil
}

func (m *Manager) apply(ctx context.Context, operation Operation, app *App) error {
	parts := app.Parts
	if operation == StopOperation {
		return m.containerAppService.Stop(ctx, parts.SubscriptionId, parts.ResourceGroupName, parts.Name)
	}

	return m.containerAppService.Start(ctx, parts.SubscriptionId, parts.ResourceGroupName, parts.Name)
}
