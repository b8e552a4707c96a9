// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azcli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/azure/acactl/pkg/tools"
)

type AzCliSubscriptionInfo struct {
	Name      string `json:"name"`
	Id        string `json:"id"`
	TenantId  string `json:"tenantId"`
	State     string `json:"state"`
	IsDefault bool   `json:"isDefault"`
}

func (cli *azCli) ListAccounts(ctx context.Context) ([]AzCliSubscriptionInfo, error) {
	res, err := cli.runAzCommand(ctx, "account", "list", "--all", "--output", "json")
	if err != nil {
		return nil, err
	}

	var subscriptions []AzCliSubscriptionInfo
	if err := json.Unmarshal([]byte(res.Stdout), &subscriptions); err != nil {
		return nil, &tools.ExternalToolError{
			Tool: toolName,
			Err:  fmt.Errorf("failed unmarshalling result JSON: %w", err),
		}
	}

	return subscriptions, nil
}
