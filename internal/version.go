// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version is the version string of the CLI. It is set at build time through -ldflags.
var Version = "0.0.0-dev.0"

const userSpecifiedAgentEnvironmentVariableName = "ACACTL_USER_AGENT"

const productIdentifierKey = "acactl"

// UserAgent returns the user agent sent with every Azure Resource Manager request, formatted as
// `acactl/<version> (Go <version>; <os>/<arch>)` optionally followed by ACACTL_USER_AGENT.
func UserAgent() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s/%s (Go %s; %s/%s)", productIdentifierKey, Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)

	if custom := os.Getenv(userSpecifiedAgentEnvironmentVariableName); custom != "" {
		sb.WriteString(" " + custom)
	}

	return sb.String()
}
