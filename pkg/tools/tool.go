// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package tools

import (
	"context"
	"fmt"
)

type ExternalTool interface {
	CheckInstalled(ctx context.Context) error
	InstallUrl() string
	Name() string
}

// ExternalToolError is returned when an external program is missing, fails, or produces output that cannot be read.
type ExternalToolError struct {
	Tool string
	Err  error
}

func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("%s: %s", e.Tool, e.Err.Error())
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}
