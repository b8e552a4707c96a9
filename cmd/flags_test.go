// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"testing"

	"github.com/azure/acactl/internal"
	"github.com/azure/acactl/pkg/apps"
	"github.com/azure/acactl/pkg/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func parseRootFlags(t *testing.T, args ...string) (*rootFlags, *internal.GlobalCommandOptions) {
	t.Helper()

	global := &internal.GlobalCommandOptions{}
	flagSet := pflag.NewFlagSet("acactl", pflag.ContinueOnError)
	flags := newRootFlags(flagSet, global)
	require.NoError(t, flagSet.Parse(NormalizeLegacyShorthands(args)))

	return flags, global
}

func Test_NormalizeLegacyShorthands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{name: "Logs", args: []string{"-fl", "web*"}, expected: []string{"--logs", "web*"}},
		{name: "Tenant", args: []string{"-t", "-te", "Prod*"}, expected: []string{"-t", "--tenant", "Prod*"}},
		{name: "WithValue", args: []string{"-te=Prod*"}, expected: []string{"--tenant=Prod*"}},
		{name: "EveryPosition", args: []string{"-g", "-fl", "--stop"}, expected: []string{"-g", "--logs", "--stop"}},
		{name: "AfterTerminator", args: []string{"--", "-fl"}, expected: []string{"--", "-fl"}},
		{name: "Empty", args: []string{}, expected: []string{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, NormalizeLegacyShorthands(test.args))
		})
	}
}

func Test_Mode(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Mode
	}{
		{name: "Default", args: []string{}, expected: ListMode},
		{name: "List", args: []string{"-l"}, expected: ListMode},
		{name: "Stop", args: []string{"-t"}, expected: StopMode},
		{name: "Start", args: []string{"-s"}, expected: StartMode},
		{name: "Restart", args: []string{"-r"}, expected: RestartMode},
		{name: "Logs", args: []string{"-fl", "web"}, expected: LogsMode},
		{name: "LogsOverStop", args: []string{"--stop", "--logs", "web"}, expected: LogsMode},
		{name: "StopOverStart", args: []string{"-s", "-t", "-r"}, expected: StopMode},
		{name: "StartOverRestart", args: []string{"-r", "-s"}, expected: StartMode},
		{name: "ListIsLowest", args: []string{"-l", "-r"}, expected: RestartMode},
		{name: "EmptyLogsIgnored", args: []string{"--logs", ""}, expected: ListMode},
		{name: "EmptyLogsFallsBackToStop", args: []string{"--logs=", "-t"}, expected: StopMode},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			flags, _ := parseRootFlags(t, test.args...)
			require.Equal(t, test.expected, flags.Mode())
		})
	}
}

func Test_Filter(t *testing.T) {
	userConfig := config.NewEmptyConfig()
	require.NoError(t, userConfig.Set(config.DefaultGlobKey, "api-*"))
	require.NoError(t, userConfig.Set(config.DefaultTenantKey, "Prod*"))

	tests := []struct {
		name     string
		args     []string
		config   config.Config
		expected apps.Filter
	}{
		{
			name:     "Defaults",
			args:     []string{},
			config:   config.NewEmptyConfig(),
			expected: apps.Filter{Subscription: "*", Name: "*"},
		},
		{
			name:     "Flags",
			args:     []string{"-g", "web-*", "-te", "Staging"},
			config:   config.NewEmptyConfig(),
			expected: apps.Filter{Subscription: "Staging", Name: "web-*"},
		},
		{
			name:     "UserConfig",
			args:     []string{},
			config:   userConfig,
			expected: apps.Filter{Subscription: "Prod*", Name: "api-*"},
		},
		{
			name:     "FlagsOverUserConfig",
			args:     []string{"--glob", "web"},
			config:   userConfig,
			expected: apps.Filter{Subscription: "Prod*", Name: "web"},
		},
		{
			name:     "LogsGlob",
			args:     []string{"-g", "ignored", "-fl", "worker*"},
			config:   userConfig,
			expected: apps.Filter{Subscription: "Prod*", Name: "worker*"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			flags, _ := parseRootFlags(t, test.args...)
			require.Equal(t, test.expected, flags.Filter(test.config))
		})
	}
}

func Test_GlobalFlags(t *testing.T) {
	_, global := parseRootFlags(t, "--debug", "--no-prompt", "--trace-log-file", "trace.json")
	require.Equal(t, &internal.GlobalCommandOptions{
		EnableDebugLogging: true,
		NoPrompt:           true,
		TraceLogFile:       "trace.json",
	}, global)
}
