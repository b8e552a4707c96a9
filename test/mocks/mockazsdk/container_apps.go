// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mockazsdk

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appcontainers/armappcontainers/v3"
	"github.com/azure/acactl/pkg/azure"
	"github.com/azure/acactl/pkg/convert"
	"github.com/azure/acactl/test/mocks"
)

const skipTokenParam = "$skiptoken"

// NewContainerApp builds a container app record the way the list API returns it.
func NewContainerApp(
	subscriptionId string,
	resourceGroup string,
	name string,
	location string,
	status armappcontainers.ContainerAppRunningStatus,
	images ...string,
) *armappcontainers.ContainerApp {
	containers := []*armappcontainers.Container{}
	for _, image := range images {
		containers = append(containers, &armappcontainers.Container{
			Image: convert.RefOf(image),
		})
	}

	return &armappcontainers.ContainerApp{
		ID:       convert.RefOf(azure.ContainerAppRID(subscriptionId, resourceGroup, name)),
		Name:     convert.RefOf(name),
		Location: convert.RefOf(location),
		Properties: &armappcontainers.ContainerAppProperties{
			RunningStatus: convert.RefOf(status),
			Template: &armappcontainers.Template{
				Containers: containers,
			},
		},
	}
}

// MockContainerAppList registers the subscription level listing of container apps.
// Each element of pages is served as one page, linked through nextLink.
func MockContainerAppList(
	mockContext *mocks.MockContext,
	subscriptionId string,
	pages ...[]*armappcontainers.ContainerApp,
) {
	if len(pages) == 0 {
		pages = [][]*armappcontainers.ContainerApp{{}}
	}

	listPath := fmt.Sprintf("/subscriptions/%s/providers/Microsoft.App/containerApps", subscriptionId)

	mockContext.HttpClient.When(func(request *http.Request) bool {
		return request.Method == http.MethodGet && request.URL.Path == listPath
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		pageIndex := 0
		if token := request.URL.Query().Get(skipTokenParam); token != "" {
			idx, err := strconv.Atoi(token)
			if err != nil {
				return nil, err
			}
			pageIndex = idx
		}

		collection := armappcontainers.ContainerAppCollection{
			Value: pages[pageIndex],
		}

		if pageIndex+1 < len(pages) {
			nextLink := fmt.Sprintf(
				"https://management.azure.com%s?api-version=%s&%s=%d",
				listPath,
				request.URL.Query().Get("api-version"),
				skipTokenParam,
				pageIndex+1,
			)
			collection.NextLink = &nextLink
		}

		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, collection)
	})
}

// OperationRecorder captures the lifecycle requests served by a mock.
type OperationRecorder struct {
	mu       sync.Mutex
	requests []*http.Request
}

func (r *OperationRecorder) add(request *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, request)
}

// Requests returns the requests captured so far.
func (r *OperationRecorder) Requests() []*http.Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*http.Request{}, r.requests...)
}

// Count returns the number of requests captured so far.
func (r *OperationRecorder) Count() int {
	return len(r.Requests())
}

// MockContainerAppStart registers the start operation of a container app, answering with statusCode.
func MockContainerAppStart(
	mockContext *mocks.MockContext,
	subscriptionId string,
	resourceGroup string,
	appName string,
	statusCode int,
) *OperationRecorder {
	return mockLifecycleOperation(mockContext, subscriptionId, resourceGroup, appName, "start", statusCode)
}

// MockContainerAppStop registers the stop operation of a container app, answering with statusCode.
func MockContainerAppStop(
	mockContext *mocks.MockContext,
	subscriptionId string,
	resourceGroup string,
	appName string,
	statusCode int,
) *OperationRecorder {
	return mockLifecycleOperation(mockContext, subscriptionId, resourceGroup, appName, "stop", statusCode)
}

func mockLifecycleOperation(
	mockContext *mocks.MockContext,
	subscriptionId string,
	resourceGroup string,
	appName string,
	operation string,
	statusCode int,
) *OperationRecorder {
	recorder := &OperationRecorder{}
	operationPath := fmt.Sprintf("%s/%s", azure.ContainerAppRID(subscriptionId, resourceGroup, appName), operation)

	mockContext.HttpClient.When(func(request *http.Request) bool {
		return request.Method == http.MethodPost && strings.EqualFold(request.URL.Path, operationPath)
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		recorder.add(request)

		if statusCode >= http.StatusBadRequest {
			body := map[string]any{
				"error": map[string]any{
					"code":    "ContainerAppOperationFailed",
					"message": fmt.Sprintf("could not %s container app '%s'", operation, appName),
				},
			}
			return mocks.CreateHttpResponseWithBody(request, statusCode, body)
		}

		containerApp := armappcontainers.ContainerApp{
			ID:   convert.RefOf(azure.ContainerAppRID(subscriptionId, resourceGroup, appName)),
			Name: convert.RefOf(appName),
		}

		return mocks.CreateHttpResponseWithBody(request, statusCode, containerApp)
	})

	return recorder
}
