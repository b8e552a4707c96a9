// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

type GlobalCommandOptions struct {
	// EnableDebugLogging indicates you should turn on verbose/debug logging in your command and any
	// launched tools. It's enabled with `--debug`, or by setting ACACTL_DEBUG to a truthy value.
	EnableDebugLogging bool

	// When true, interactive prompts are never shown. Confirmation prompts are treated as declined and
	// selection prompts fail.
	NoPrompt bool

	// Optional path to a file that receives the spans recorded for the invocation.
	TraceLogFile string
}
