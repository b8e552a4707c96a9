// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package containerapps

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appcontainers/armappcontainers/v3"
	"github.com/azure/acactl/pkg/account"
)

// ContainerAppService exposes operations for managing Azure Container Apps
type ContainerAppService interface {
	// Lists every container app in the subscription, in the order the service returns them.
	List(ctx context.Context, subscriptionId string) ([]*armappcontainers.ContainerApp, error)
	// Starts the container app and waits for the operation to complete.
	Start(ctx context.Context, subscriptionId, resourceGroupName, appName string) error
	// Stops the container app and waits for the operation to complete.
	Stop(ctx context.Context, subscriptionId, resourceGroupName, appName string) error
}

// Default interval between polls of a long running start or stop operation.
const defaultPollFrequency = 5 * time.Second

// NewContainerAppService creates a new ContainerAppService
func NewContainerAppService(
	credentialProvider account.SubscriptionCredentialProvider,
	armClientOptions *arm.ClientOptions,
) ContainerAppService {
	return &containerAppService{
		credentialProvider: credentialProvider,
		armClientOptions:   armClientOptions,
		pollFrequency:      defaultPollFrequency,
	}
}

type containerAppService struct {
	credentialProvider account.SubscriptionCredentialProvider
	armClientOptions   *arm.ClientOptions
	pollFrequency      time.Duration
}

func (cas *containerAppService) List(
	ctx context.Context,
	subscriptionId string,
) ([]*armappcontainers.ContainerApp, error) {
	client, err := cas.createContainerAppsClient(ctx, subscriptionId)
	if err != nil {
		return nil, err
	}

	apps := []*armappcontainers.ContainerApp{}
	pager := client.NewListBySubscriptionPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing container apps in subscription '%s': %w", subscriptionId, err)
		}

		apps = append(apps, page.Value...)
	}

	log.Printf("found %d container apps in subscription %s", len(apps), subscriptionId)

	return apps, nil
}

func (cas *containerAppService) Start(
	ctx context.Context,
	subscriptionId string,
	resourceGroupName string,
	appName string,
) error {
	client, err := cas.createContainerAppsClient(ctx, subscriptionId)
	if err != nil {
		return err
	}

	poller, err := client.BeginStart(ctx, resourceGroupName, appName, nil)
	if err != nil {
		return fmt.Errorf("starting container app: %w", err)
	}

	_, err = poller.PollUntilDone(ctx, cas.pollOptions())
	if err != nil {
		return fmt.Errorf("polling for container app start completion: %w", err)
	}

	return nil
}

func (cas *containerAppService) Stop(
	ctx context.Context,
	subscriptionId string,
	resourceGroupName string,
	appName string,
) error {
	client, err := cas.createContainerAppsClient(ctx, subscriptionId)
	if err != nil {
		return err
	}

	poller, err := client.BeginStop(ctx, resourceGroupName, appName, nil)
	if err != nil {
		return fmt.Errorf("stopping container app: %w", err)
	}

	_, err = poller.PollUntilDone(ctx, cas.pollOptions())
	if err != nil {
		return fmt.Errorf("polling for container app stop completion: %w", err)
	}

	return nil
}

func (cas *containerAppService) pollOptions() *runtime.PollUntilDoneOptions {
	return &runtime.PollUntilDoneOptions{
		Frequency: cas.pollFrequency,
	}
}

func (cas *containerAppService) createContainerAppsClient(
	ctx context.Context,
	subscriptionId string,
) (*armappcontainers.ContainerAppsClient, error) {
	credential, err := cas.credentialProvider.CredentialForSubscription(ctx, subscriptionId)
	if err != nil {
		return nil, err
	}

	client, err := armappcontainers.NewContainerAppsClient(subscriptionId, credential, cas.armClientOptions)
	if err != nil {
		return nil, fmt.Errorf("creating ContainerApps client: %w", err)
	}

	return client, nil
}
