// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package apps

import (
	"context"
	"fmt"
	"log"

	"github.com/azure/acactl/internal/tracing"
	"github.com/azure/acactl/pkg/account"
	"github.com/azure/acactl/pkg/azure"
	"github.com/azure/acactl/pkg/containerapps"
	"github.com/azure/acactl/pkg/convert"
	"github.com/azure/acactl/pkg/glob"
	"github.com/azure/acactl/pkg/input"
	"github.com/azure/acactl/pkg/tools/azcli"
)

// SubscriptionLister returns the eligible subscriptions whose name matches a pattern.
type SubscriptionLister interface {
	ListSubscriptionsMatching(ctx context.Context, matcher glob.Matcher) ([]account.Subscription, error)
}

// Manager enumerates container apps and runs operations against them.
type Manager struct {
	subscriptions       SubscriptionLister
	containerAppService containerapps.ContainerAppService
	azCli               azcli.AzCli
	console             input.Console
	batchRunner         BatchRunner
}

func NewManager(
	subscriptions SubscriptionLister,
	containerAppService containerapps.ContainerAppService,
	azCli azcli.AzCli,
	console input.Console,
	batchRunner BatchRunner,
) *Manager {
	return &Manager{
		subscriptions:       subscriptions,
		containerAppService: containerAppService,
		azCli:               azCli,
		console:             console,
		batchRunner:         batchRunner,
	}
}

// List returns the apps matching filter, grouped by subscription in subscription order
// and in listing order within a subscription. Every call queries the control plane again.
func (m *Manager) List(ctx context.Context, filter Filter) ([]*App, error) {
	matchers, err := filter.compile()
	if err != nil {
		return nil, err
	}

	ctx, span := tracing.Start(ctx, "apps.list")
	defer span.End()

	subscriptions, err := m.subscriptions.ListSubscriptionsMatching(ctx, matchers.subscription)
	if err != nil {
		return nil, err
	}

	result := []*App{}
	for _, subscription := range subscriptions {
		containerApps, err := m.containerAppService.List(ctx, subscription.Id)
		if err != nil {
			return nil, err
		}

		for _, containerApp := range containerApps {
			if containerApp == nil {
				continue
			}

			// Only the ids of matching apps are parsed.
			if !matchers.name.Match(convert.ToValueWithDefault(containerApp.Name, "")) {
				continue
			}

			if containerApp.ID == nil {
				return nil, fmt.Errorf("%w: container app without an id in subscription '%s'",
					azure.ErrInvalidResourceId, subscription.Name)
			}

			parts, err := azure.ParseContainerAppID(*containerApp.ID)
			if err != nil {
				return nil, err
			}

			result = append(result, &App{
				ContainerApp: containerApp,
				Parts:        parts,
				Subscription: subscription,
			})
		}
	}

	log.Printf(
		"%d apps matched name '%s' in %d subscriptions matching '%s'",
		len(result),
		matchers.name.Pattern(),
		len(subscriptions),
		matchers.subscription.Pattern(),
	)

	return result, nil
}
