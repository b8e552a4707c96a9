// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package account

// Subscription is an enabled subscription visible to the logged in account.
type Subscription struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	SubscriptionId string `json:"subscriptionId"`
	TenantId       string `json:"tenantId"`
	State          string `json:"state"`
}

const subscriptionStateEnabled = "Enabled"

// Subscriptions whose display name contains this text are never operated on.
const excludedNameMarker = "Test"
