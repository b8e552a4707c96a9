// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package account

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/azure/acactl/pkg/glob"
	"github.com/azure/acactl/pkg/tools/azcli"
)

// SubscriptionTenantResolver allows resolving the correct tenant ID
// that allows the current account access to a given subscription.
type SubscriptionTenantResolver interface {
	// Resolve the tenant ID required by the current account to access the given subscription.
	LookupTenant(ctx context.Context, subscriptionId string) (tenantId string, err error)
}

// SubscriptionsManager lists the subscriptions of the account logged in to the Azure CLI.
//
// The first successful listing is kept for the lifetime of the manager and is never invalidated.
// Failed listings are not kept, so a later call queries the Azure CLI again.
type SubscriptionsManager struct {
	azCli azcli.AzCli

	mu            sync.Mutex
	subscriptions []Subscription
	loaded        bool
}

func NewSubscriptionsManager(azCli azcli.AzCli) *SubscriptionsManager {
	return &SubscriptionsManager{
		azCli: azCli,
	}
}

// ListSubscriptions returns the enabled subscriptions with an id and tenant, skipping any whose name contains "Test".
func (m *SubscriptionsManager) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loaded {
		return m.subscriptions, nil
	}

	accounts, err := m.azCli.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	subscriptions := make([]Subscription, 0, len(accounts))
	for _, account := range accounts {
		if !isEligible(account) {
			log.Printf("skipping subscription '%s' (%s), state: %s", account.Name, account.Id, account.State)
			continue
		}

		subscriptions = append(subscriptions, Subscription{
			Id:             account.Id,
			Name:           account.Name,
			SubscriptionId: account.Id,
			TenantId:       account.TenantId,
			State:          account.State,
		})
	}

	m.subscriptions = subscriptions
	m.loaded = true

	return m.subscriptions, nil
}

// ListSubscriptionsMatching returns the subscriptions whose name matches the given matcher, in listing order.
func (m *SubscriptionsManager) ListSubscriptionsMatching(
	ctx context.Context,
	matcher glob.Matcher,
) ([]Subscription, error) {
	subscriptions, err := m.ListSubscriptions(ctx)
	if err != nil {
		return nil, err
	}

	matching := []Subscription{}
	for _, sub := range subscriptions {
		if matcher.Match(sub.Name) {
			matching = append(matching, sub)
		}
	}

	return matching, nil
}

// Resolve the tenant ID required by the current account to access the given subscription.
func (m *SubscriptionsManager) LookupTenant(ctx context.Context, subscriptionId string) (tenantId string, err error) {
	subscriptions, err := m.ListSubscriptions(ctx)
	if err != nil {
		return "", fmt.Errorf("resolving user access to subscription '%s' : %w", subscriptionId, err)
	}

	for _, sub := range subscriptions {
		if strings.EqualFold(sub.Id, subscriptionId) {
			return sub.TenantId, nil
		}
	}

	return "", fmt.Errorf(
		"failed to resolve user access to subscription with ID '%s'. "+
			"If you recently gained access to this subscription, run `az login` again to reload subscriptions",
		subscriptionId)
}

func isEligible(account azcli.AzCliSubscriptionInfo) bool {
	return account.Id != "" &&
		account.TenantId != "" &&
		account.State == subscriptionStateEnabled &&
		!strings.Contains(account.Name, excludedNameMarker)
}
