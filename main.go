// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	azcorelog "github.com/Azure/azure-sdk-for-go/sdk/azcore/log"
	"github.com/azure/acactl/cmd"
	"github.com/azure/acactl/internal"
	"github.com/azure/acactl/internal/tracing"
	"github.com/azure/acactl/pkg/output"
	"github.com/mattn/go-colorable"
	"github.com/spf13/pflag"
)

func main() {
	ctx := context.Background()

	restoreColorMode := colorable.EnableColorsStdout(nil)
	defer restoreColorMode()

	args := cmd.NormalizeLegacyShorthands(os.Args[1:])

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if isDebugEnabled(args) {
		azcorelog.SetListener(func(event azcorelog.Event, msg string) {
			log.Printf("%s: %s\n", event, msg)
		})
	} else {
		log.SetOutput(io.Discard)
	}

	ts, err := tracing.Initialize(traceLogFile(args))
	if err != nil {
		log.Printf("failed initializing tracing: %v", err)
	}

	rootCmd := cmd.NewRootCmd()
	rootCmd.SetArgs(args)
	cmdErr := rootCmd.ExecuteContext(ctx)

	if ts != nil {
		if err := ts.Shutdown(ctx); err != nil {
			log.Printf("non-graceful tracing shutdown: %v\n", err)
		}
	}

	if cmdErr != nil {
		printError(cmdErr)
		os.Exit(1)
	}
}

func printError(err error) {
	stderr := colorable.NewColorableStderr()
	fmt.Fprintln(stderr, output.WithErrorFormat("ERROR: %s", err.Error()))

	var suggestionErr *internal.ErrorWithSuggestion
	if errors.As(err, &suggestionErr) {
		fmt.Fprintf(stderr, "%s: %s\n", output.WithHighLightFormat("Suggestion"), suggestionErr.Suggestion)
	}

	var traceErr *internal.ErrorWithTraceId
	if errors.As(err, &traceErr) && traceErr.TraceId != "" {
		fmt.Fprintln(stderr, output.WithGrayFormat("TraceID: %s", traceErr.TraceId))
	}
}

// isDebugEnabled reports whether --debug was passed or ACACTL_DEBUG is set to a truthy value.
func isDebugEnabled(args []string) bool {
	if value, has := os.LookupEnv("ACACTL_DEBUG"); has {
		if enabled, err := strconv.ParseBool(value); err == nil && enabled {
			return true
		}
	}

	debug := false
	help := false
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)

	// The full command line carries flags this set does not define.
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.BoolVar(&debug, "debug", false, "")

	// pflag returns ErrHelp for an undefined --help.
	flags.BoolVarP(&help, "help", "h", false, "")

	if err := flags.Parse(args); err != nil {
		log.Printf("could not parse flags: %v", err)
	}

	return debug
}

// traceLogFile returns the value of --trace-log-file, if any.
func traceLogFile(args []string) string {
	traceFile := ""
	help := false
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.StringVar(&traceFile, "trace-log-file", "", "")
	flags.BoolVarP(&help, "help", "h", false, "")

	if err := flags.Parse(args); err != nil {
		log.Printf("could not parse flags: %v", err)
	}

	return traceFile
}
