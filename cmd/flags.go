// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"strings"

	"github.com/azure/acactl/internal"
	"github.com/azure/acactl/pkg/apps"
	"github.com/azure/acactl/pkg/config"
	"github.com/azure/acactl/pkg/glob"
	"github.com/spf13/pflag"
)

const (
	logsFlagName   = "logs"
	globFlagName   = "glob"
	tenantFlagName = "tenant"
	saveFlagName   = "save-defaults"
)

// Mode is the top level operation selected by the flags.
type Mode string

const (
	ListMode    Mode = "list"
	StopMode    Mode = "stop"
	StartMode   Mode = "start"
	RestartMode Mode = "restart"
	LogsMode    Mode = "logs"
)

type rootFlags struct {
	list    bool
	stop    bool
	start   bool
	restart bool
	logs    string
	glob    string
	tenant  string
	save    bool

	flagSet *pflag.FlagSet
	global  *internal.GlobalCommandOptions
}

func (f *rootFlags) Bind(local *pflag.FlagSet, global *internal.GlobalCommandOptions) {
	local.BoolVarP(&f.list, "list", "l", false, "List matching apps (default).")
	local.BoolVarP(&f.stop, "stop", "t", false, "Stop matching apps after confirmation.")
	local.BoolVarP(&f.start, "start", "s", false, "Start matching apps after confirmation.")
	local.BoolVarP(&f.restart, "restart", "r", false, "Stop, then start matching apps after confirmation.")
	local.StringVar(&f.logs, logsFlagName, "", "Follow the logs of the app matching the glob (short form -fl).")
	local.StringVarP(&f.glob, globFlagName, "g", glob.MatchAll, "Glob matched against app names.")
	local.StringVar(&f.tenant, tenantFlagName, glob.MatchAll,
		"Glob matched against subscription names (short form -te).")
	local.BoolVar(&f.save, saveFlagName, false, "Store the given --glob and --tenant as defaults in the user config.")

	local.BoolVar(&global.EnableDebugLogging, "debug", false, "Enables debug and diagnostics logging.")
	local.BoolVar(
		&global.NoPrompt,
		"no-prompt",
		false,
		"Accepts no input. Confirmations are declined and app selection fails.",
	)
	local.StringVar(&global.TraceLogFile, "trace-log-file", "", "Write the spans of the invocation to a file.")
	_ = local.MarkHidden("trace-log-file")

	f.flagSet = local
	f.global = global
}

func newRootFlags(local *pflag.FlagSet, global *internal.GlobalCommandOptions) *rootFlags {
	flags := &rootFlags{}
	flags.Bind(local, global)

	return flags
}

// Mode returns the selected mode. When several are requested, logs wins over stop, then start, then restart.
// An empty --logs value counts as not set.
func (f *rootFlags) Mode() Mode {
	switch {
	case f.logs != "":
		return LogsMode
	case f.stop:
		return StopMode
	case f.start:
		return StartMode
	case f.restart:
		return RestartMode
	default:
		return ListMode
	}
}

// Filter builds the app filter. Flags win over the user config defaults.
func (f *rootFlags) Filter(userConfig config.Config) apps.Filter {
	filter := apps.Filter{
		Subscription: f.valueOrDefault(tenantFlagName, f.tenant, userConfig, config.DefaultTenantKey),
		Name:         f.valueOrDefault(globFlagName, f.glob, userConfig, config.DefaultGlobKey),
	}

	if f.Mode() == LogsMode {
		filter.Name = f.logs
	}

	return filter
}

func (f *rootFlags) valueOrDefault(flagName string, value string, userConfig config.Config, key string) string {
	if f.flagSet.Changed(flagName) || userConfig == nil {
		return value
	}

	if configured, ok := userConfig.GetString(key); ok && configured != "" {
		return configured
	}

	return value
}

var legacyShorthands = map[string]string{
	"-fl": "--" + logsFlagName,
	"-te": "--" + tenantFlagName,
}

// NormalizeLegacyShorthands rewrites the two-letter shorthands -fl and -te, which pflag cannot
// express, to their long forms. Arguments after "--" are left untouched.
func NormalizeLegacyShorthands(args []string) []string {
	normalized := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(normalized, args[i:]...)
		}

		name, value, hasValue := strings.Cut(arg, "=")
		if long, has := legacyShorthands[name]; has {
			if hasValue {
				arg = long + "=" + value
			} else {
				arg = long
			}
		}

		normalized = append(normalized, arg)
	}

	return normalized
}
