// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mocks

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/azure/acactl/internal"
	"github.com/azure/acactl/pkg/azsdk"
	"github.com/azure/acactl/test/mocks/mockexec"
	"github.com/azure/acactl/test/mocks/mockhttp"
	"github.com/azure/acactl/test/mocks/mockinput"
)

type MockContext struct {
	Context                        *context.Context
	Console                        *mockinput.MockConsole
	HttpClient                     *mockhttp.MockHttpClient
	CommandRunner                  *mockexec.MockCommandRunner
	SubscriptionCredentialProvider *MockCredentialProvider
	ArmClientOptions               *arm.ClientOptions
}

func NewMockContext(ctx context.Context) *MockContext {
	mockConsole := mockinput.NewMockConsole()
	commandRunner := mockexec.NewMockCommandRunner()
	httpClient := mockhttp.NewMockHttpUtil()

	armClientOptions := azsdk.NewClientOptionsBuilder().
		WithTransport(httpClient).
		WithPerCallPolicy(azsdk.NewUserAgentPolicy(internal.UserAgent())).
		BuildArmClientOptions()

	// Failed mocked requests should surface immediately.
	armClientOptions.Retry = policy.RetryOptions{MaxRetries: -1}

	return &MockContext{
		Context:                        &ctx,
		Console:                        mockConsole,
		CommandRunner:                  commandRunner,
		HttpClient:                     httpClient,
		SubscriptionCredentialProvider: &MockCredentialProvider{},
		ArmClientOptions:               armClientOptions,
	}
}
