// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package containerapps

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appcontainers/armappcontainers/v3"
	"github.com/azure/acactl/test/mocks"
	"github.com/azure/acactl/test/mocks/mockazsdk"
	"github.com/stretchr/testify/require"
)

const (
	subscriptionId = "SUBSCRIPTION_ID"
	resourceGroup  = "RESOURCE_GROUP"
)

func newService(mockContext *mocks.MockContext) ContainerAppService {
	return NewContainerAppService(mockContext.SubscriptionCredentialProvider, mockContext.ArmClientOptions)
}

func Test_ContainerApp_List(t *testing.T) {
	t.Run("SinglePage", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		mockazsdk.MockContainerAppList(mockContext, subscriptionId, []*armappcontainers.ContainerApp{
			mockazsdk.NewContainerApp(subscriptionId, resourceGroup, "web", "eastus2",
				armappcontainers.ContainerAppRunningStatusRunning, "myacr.azurecr.io/web:1.0"),
			mockazsdk.NewContainerApp(subscriptionId, resourceGroup, "api", "eastus2",
				armappcontainers.ContainerAppRunningStatusStopped),
		})

		apps, err := newService(mockContext).List(*mockContext.Context, subscriptionId)
		require.NoError(t, err)
		require.Len(t, apps, 2)
		require.Equal(t, "web", *apps[0].Name)
		require.Equal(t, "myacr.azurecr.io/web:1.0", *apps[0].Properties.Template.Containers[0].Image)
		require.Equal(t, "api", *apps[1].Name)
		require.Equal(t, armappcontainers.ContainerAppRunningStatusStopped, *apps[1].Properties.RunningStatus)
	})

	t.Run("MultiplePages", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		mockazsdk.MockContainerAppList(mockContext, subscriptionId,
			[]*armappcontainers.ContainerApp{
				mockazsdk.NewContainerApp(subscriptionId, resourceGroup, "first", "westus", "Running"),
			},
			[]*armappcontainers.ContainerApp{
				mockazsdk.NewContainerApp(subscriptionId, resourceGroup, "second", "westus", "Running"),
				mockazsdk.NewContainerApp(subscriptionId, resourceGroup, "third", "westus", "Running"),
			},
		)

		apps, err := newService(mockContext).List(*mockContext.Context, subscriptionId)
		require.NoError(t, err)

		names := []string{}
		for _, app := range apps {
			names = append(names, *app.Name)
		}
		require.Equal(t, []string{"first", "second", "third"}, names)
		require.Len(t, mockContext.HttpClient.Requests(), 2)
	})

	t.Run("Empty", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		mockazsdk.MockContainerAppList(mockContext, subscriptionId)

		apps, err := newService(mockContext).List(*mockContext.Context, subscriptionId)
		require.NoError(t, err)
		require.Empty(t, apps)
	})

	t.Run("Failure", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		mockContext.HttpClient.When(func(request *http.Request) bool {
			return request.Method == http.MethodGet
		}).RespondFn(func(request *http.Request) (*http.Response, error) {
			return mocks.CreateHttpResponseWithBody(request, http.StatusForbidden, map[string]any{
				"error": map[string]any{"code": "AuthorizationFailed", "message": "no access"},
			})
		})

		_, err := newService(mockContext).List(*mockContext.Context, subscriptionId)
		require.Error(t, err)

		var respErr *azcore.ResponseError
		require.True(t, errors.As(err, &respErr))
		require.Equal(t, http.StatusForbidden, respErr.StatusCode)
	})
}

func Test_ContainerApp_Lifecycle(t *testing.T) {
	t.Run("Start", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		recorder := mockazsdk.MockContainerAppStart(mockContext, subscriptionId, resourceGroup, "web", http.StatusOK)

		err := newService(mockContext).Start(*mockContext.Context, subscriptionId, resourceGroup, "web")
		require.NoError(t, err)
		require.Equal(t, 1, recorder.Count())
		require.Equal(t,
			"/subscriptions/SUBSCRIPTION_ID/resourceGroups/RESOURCE_GROUP/providers/Microsoft.App/containerApps/web/start",
			recorder.Requests()[0].URL.Path)
	})

	t.Run("Stop", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		recorder := mockazsdk.MockContainerAppStop(mockContext, subscriptionId, resourceGroup, "web", http.StatusOK)

		err := newService(mockContext).Stop(*mockContext.Context, subscriptionId, resourceGroup, "web")
		require.NoError(t, err)
		require.Equal(t, 1, recorder.Count())
	})

	t.Run("StopFailed", func(t *testing.T) {
		mockContext := mocks.NewMockContext(context.Background())
		mockazsdk.MockContainerAppStop(mockContext, subscriptionId, resourceGroup, "web", http.StatusConflict)

		err := newService(mockContext).Stop(*mockContext.Context, subscriptionId, resourceGroup, "web")
		require.Error(t, err)

		var respErr *azcore.ResponseError
		require.True(t, errors.As(err, &respErr))
		require.Equal(t, "ContainerAppOperationFailed", respErr.ErrorCode)
	})
}
