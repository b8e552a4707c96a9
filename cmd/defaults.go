// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/azure/acactl/internal"
	"github.com/azure/acactl/pkg/config"
	"github.com/azure/acactl/pkg/glob"
	"github.com/azure/acactl/pkg/input"
	"github.com/azure/acactl/pkg/ioc"
)

// saveDefaults stores the explicitly set --glob and --tenant values in the user config.
func saveDefaults(ctx context.Context, container *ioc.NestedContainer, flags *rootFlags) error {
	defaults := map[string]string{}
	if flags.flagSet.Changed(globFlagName) {
		defaults[config.DefaultGlobKey] = flags.glob
	}
	if flags.flagSet.Changed(tenantFlagName) {
		defaults[config.DefaultTenantKey] = flags.tenant
	}

	if len(defaults) == 0 {
		return &internal.ErrorWithSuggestion{
			Err:        errors.New("nothing to save"),
			Suggestion: "Pass --glob or --tenant together with --save-defaults.",
		}
	}

	var userConfigManager config.UserConfigManager
	var userConfig config.Config
	var console input.Console
	if err := container.Resolve(&userConfigManager); err != nil {
		return err
	}
	if err := container.Resolve(&userConfig); err != nil {
		return err
	}
	if err := container.Resolve(&console); err != nil {
		return err
	}

	for key, pattern := range defaults {
		if _, err := glob.Compile(pattern); err != nil {
			return err
		}

		if err := userConfig.Set(key, pattern); err != nil {
			return fmt.Errorf("setting '%s': %w", key, err)
		}
	}

	if err := userConfigManager.Save(userConfig); err != nil {
		return fmt.Errorf("saving user config: %w", err)
	}

	console.Message(ctx, "Saved defaults to the user config.")
	return nil
}
