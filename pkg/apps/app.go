// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package apps enumerates container apps across subscriptions and runs lifecycle and log operations on them.
package apps

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appcontainers/armappcontainers/v3"
	"github.com/azure/acactl/pkg/account"
	"github.com/azure/acactl/pkg/azure"
	"github.com/azure/acactl/pkg/glob"
)

// App is a container app together with the identifiers derived from its resource ID.
type App struct {
	ContainerApp *armappcontainers.ContainerApp
	Parts        *azure.ContainerAppIdParts
	Subscription account.Subscription
}

// Name returns the app name taken from its resource ID.
func (a *App) Name() string {
	return a.Parts.Name
}

// Filter selects apps by subscription name and app name globs. Empty patterns match everything.
type Filter struct {
	Subscription string
	Name         string
}

type compiledFilter struct {
	subscription glob.Matcher
	name         glob.Matcher
}

func (f Filter) compile() (*compiledFilter, error) {
	subscription, err := glob.Compile(f.Subscription)
	if err != nil {
		return nil, fmt.Errorf("subscription filter: %w", err)
	}

	name, err := glob.Compile(f.Name)
	if err != nil {
		return nil, fmt.Errorf("name filter: %w", err)
	}

	return &compiledFilter{
		subscription: subscription,
		name:         name,
	}, nil
}
