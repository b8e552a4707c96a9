// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseContainerAppID(t *testing.T) {
	t.Run("WithMatch", func(t *testing.T) {
		id := ContainerAppRID("70a036f6-8e4d-4615-bad6-149c02e7720d", "RG_NAME", "my-app")

		parts, err := ParseContainerAppID(id)
		require.NoError(t, err)
		require.Equal(t, &ContainerAppIdParts{
			SubscriptionId:    "70a036f6-8e4d-4615-bad6-149c02e7720d",
			ResourceGroupName: "RG_NAME",
			Name:              "my-app",
		}, parts)
	})

	t.Run("WithMatchLower", func(t *testing.T) {
		id := "/SUBSCRIPTIONS/sub/resourcegroups/Rg/PROVIDERS/microsoft.app/containerapps/App"

		parts, err := ParseContainerAppID(id)
		require.NoError(t, err)
		require.Equal(t, "sub", parts.SubscriptionId)
		require.Equal(t, "Rg", parts.ResourceGroupName)
		require.Equal(t, "App", parts.Name)
	})

	invalid := map[string]string{
		"Empty":           "",
		"Garbage":         "i don't have what your looking for",
		"WrongProvider":   "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Web/sites/app",
		"TrailingSegment": "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.App/containerApps/app/revisions/r1",
		"MissingName":     "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.App/containerApps/",
		"NoLeadingSlash":  "subscriptions/sub/resourceGroups/rg/providers/Microsoft.App/containerApps/app",
		"DotNotEscaped":   "/subscriptions/sub/resourceGroups/rg/providers/MicrosoftXApp/containerApps/app",
		"EmptyGroup":      "/subscriptions/sub/resourceGroups//providers/Microsoft.App/containerApps/app",
	}

	for name, id := range invalid {
		t.Run(name, func(t *testing.T) {
			parts, err := ParseContainerAppID(id)
			require.Nil(t, parts)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidResourceId))

			var idErr *InvalidResourceIdError
			require.True(t, errors.As(err, &idErr))
			require.Equal(t, id, idErr.ResourceId)
		})
	}
}

func Test_ShortSubscriptionId(t *testing.T) {
	require.Equal(t, "149c02e7720d", ShortSubscriptionId("70a036f6-8e4d-4615-bad6-149c02e7720d"))
	require.Equal(t, "nohyphen", ShortSubscriptionId("nohyphen"))
	require.Equal(t, "", ShortSubscriptionId(""))
}
