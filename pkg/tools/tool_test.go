// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package tools

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExternalToolError(t *testing.T) {
	inner := errors.New("not logged in")
	err := error(&ExternalToolError{Tool: "Azure CLI", Err: inner})

	require.Equal(t, "Azure CLI: not logged in", err.Error())
	require.True(t, errors.Is(err, inner))

	var toolErr *ExternalToolError
	require.True(t, errors.As(err, &toolErr))
	require.Equal(t, "Azure CLI", toolErr.Tool)
}
