// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azure

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidResourceId matches every *InvalidResourceIdError via errors.Is.
var ErrInvalidResourceId = errors.New("invalid container app resource id")

// InvalidResourceIdError is returned when a resource id does not have the container app shape.
type InvalidResourceIdError struct {
	ResourceId string
}

func (e *InvalidResourceIdError) Error() string {
	return fmt.Sprintf("Invalid Container App resource ID: '%s'", e.ResourceId)
}

func (e *InvalidResourceIdError) Is(target error) bool {
	return target == ErrInvalidResourceId
}

// ContainerAppIdParts are the components of a container app resource id.
type ContainerAppIdParts struct {
	SubscriptionId    string
	ResourceGroupName string
	Name              string
}

var containerAppIdRegex = regexp.MustCompile(
	`(?i)^/subscriptions/([^/]+)/resourceGroups/([^/]+)/providers/Microsoft\.App/containerApps/([^/]+)$`)

// ParseContainerAppID splits a fully qualified container app resource id into its parts.
// Segment names are matched case-insensitively; the captured values keep their original casing.
func ParseContainerAppID(id string) (*ContainerAppIdParts, error) {
	matches := containerAppIdRegex.FindStringSubmatch(id)
	if matches == nil {
		return nil, &InvalidResourceIdError{ResourceId: id}
	}

	return &ContainerAppIdParts{
		SubscriptionId:    matches[1],
		ResourceGroupName: matches[2],
		Name:              matches[3],
	}, nil
}

// Creates Azure subscription resource ID
func SubscriptionRID(subscriptionId string) string {
	return fmt.Sprintf("/subscriptions/%s", subscriptionId)
}

// Creates resource ID for an Azure resource group
func ResourceGroupRID(subscriptionId, resourceGroupName string) string {
	return fmt.Sprintf("%s/resourceGroups/%s", SubscriptionRID(subscriptionId), resourceGroupName)
}

func ContainerAppRID(subscriptionId, resourceGroupName, containerAppName string) string {
	return fmt.Sprintf(
		"%s/providers/Microsoft.App/containerApps/%s",
		ResourceGroupRID(subscriptionId, resourceGroupName),
		containerAppName,
	)
}

// ShortSubscriptionId returns the last hyphen delimited segment of a subscription id.
func ShortSubscriptionId(subscriptionId string) string {
	parts := strings.Split(subscriptionId, "-")
	return parts[len(parts)-1]
}
