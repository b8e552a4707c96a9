// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package account

import (
	"context"
	"log"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// SubscriptionCredentialProvider provides an [azcore.TokenCredential] configured
// to use the tenant id that corresponds to the tenant the given subscription
// is located in.
type SubscriptionCredentialProvider interface {
	CredentialForSubscription(ctx context.Context, subscriptionId string) (azcore.TokenCredential, error)
}

// MultiTenantCredentialProvider provides a credential for a given tenant.
type MultiTenantCredentialProvider interface {
	GetTokenCredential(ctx context.Context, tenantId string) (azcore.TokenCredential, error)
}

type subscriptionCredentialProvider struct {
	tenantResolver     SubscriptionTenantResolver
	credentialProvider MultiTenantCredentialProvider
}

func NewSubscriptionCredentialProvider(
	tenantResolver SubscriptionTenantResolver,
	credentialProvider MultiTenantCredentialProvider,
) SubscriptionCredentialProvider {
	return &subscriptionCredentialProvider{
		tenantResolver:     tenantResolver,
		credentialProvider: credentialProvider,
	}
}

func (p *subscriptionCredentialProvider) CredentialForSubscription(
	ctx context.Context,
	subscriptionId string,
) (azcore.TokenCredential, error) {
	tenantId, err := p.tenantResolver.LookupTenant(ctx, subscriptionId)
	if err != nil {
		return nil, err
	}

	return p.credentialProvider.GetTokenCredential(ctx, tenantId)
}

// CliCredentialFactory builds the credential used for a tenant. An empty tenant id means the home tenant.
type CliCredentialFactory func(tenantId string) (azcore.TokenCredential, error)

// NewAzureCliCredential returns an Azure CLI backed credential for the given tenant.
func NewAzureCliCredential(tenantId string) (azcore.TokenCredential, error) {
	return azidentity.NewAzureCLICredential(&azidentity.AzureCLICredentialOptions{
		TenantID: tenantId,
	})
}

// CliCredentialProvider hands out Azure CLI credentials, one per tenant, reusing them for the life of the process.
type CliCredentialProvider struct {
	newCredential     CliCredentialFactory
	tenantCredentials sync.Map
}

func NewCliCredentialProvider(newCredential CliCredentialFactory) *CliCredentialProvider {
	if newCredential == nil {
		newCredential = NewAzureCliCredential
	}

	return &CliCredentialProvider{
		newCredential: newCredential,
	}
}

// Gets a token credential for the given tenant. If tenantId is empty, uses the default home tenant.
func (p *CliCredentialProvider) GetTokenCredential(ctx context.Context, tenantId string) (azcore.TokenCredential, error) {
	if val, ok := p.tenantCredentials.Load(tenantId); ok {
		return val.(azcore.TokenCredential), nil
	}

	log.Printf("Getting credential for tenant %s", tenantId)

	credential, err := p.newCredential(tenantId)
	if err != nil {
		return nil, err
	}

	actual, _ := p.tenantCredentials.LoadOrStore(tenantId, credential)
	return actual.(azcore.TokenCredential), nil
}
