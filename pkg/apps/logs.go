// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package apps

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/azure/acactl/internal"
	"github.com/azure/acactl/pkg/input"
	"github.com/azure/acactl/pkg/output"
)

// ErrAmbiguousApp is returned when several apps match and the user cannot be asked to pick one.
var ErrAmbiguousApp = errors.New("more than one app matches")

const (
	noAppsFoundMessage  = "no apps found"
	invalidIndexMessage = "Invalid index"
)

// FollowLogs streams the logs of the single app matching filter until interrupted.
// When several apps match, the user picks one from an indexed table.
// No matches and an invalid pick are reported on the console and are not errors.
func (m *Manager) FollowLogs(ctx context.Context, filter Filter) error {
	apps, err := m.List(ctx, filter)
	if err != nil {
		return err
	}

	var target *App
	switch len(apps) {
	case 0:
		m.console.Message(ctx, noAppsFoundMessage)
		return nil
	case 1:
		target = apps[0]
	default:
		if m.console.IsNoPromptMode() {
			return &internal.ErrorWithSuggestion{
				Err:        fmt.Errorf("%w: %d apps match", ErrAmbiguousApp, len(apps)),
				Suggestion: "Narrow the glob so that it matches a single app, or run without --no-prompt to pick one.",
			}
		}

		target, err = m.selectApp(ctx, apps)
		if err != nil {
			return err
		}

		if target == nil {
			m.console.Message(ctx, invalidIndexMessage)
			return nil
		}
	}

	m.console.Message(ctx, fmt.Sprintf("Following logs for %s", output.WithHighLightFormat("%s", target.Name())))
	return m.azCli.FollowContainerAppLogs(ctx, target.Parts)
}

// selectApp renders the indexed table and asks for an index. A nil app means the answer was not a valid index.
func (m *Manager) selectApp(ctx context.Context, apps []*App) (*App, error) {
	err := Present(&output.TableFormatter{}, m.console.Handles().Stdout, apps, PresentOptions{WithIndex: true})
	if err != nil {
		return nil, err
	}

	response, err := m.console.Prompt(ctx, input.ConsoleOptions{
		Message: fmt.Sprintf("%d apps match. Enter the # of the app to follow logs for:", len(apps)),
	})
	if err != nil {
		return nil, err
	}

	index, err := strconv.Atoi(strings.TrimSpace(response))
	if err != nil || index < 0 || index >= len(apps) {
		return nil, nil
	}

	return apps[index], nil
}
