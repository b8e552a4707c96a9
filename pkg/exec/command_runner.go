// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// CommandRunner exposes the contract for executing console/shell commands for the specified runArgs
type CommandRunner interface {
	Run(ctx context.Context, args RunArgs) (RunResult, error)
	// ToolInPath checks whether the named program can be found on the PATH.
	ToolInPath(name string) error
}

type RunnerOptions struct {
	// Stdin is the input stream. If nil, os.Stdin is used.
	Stdin io.Reader
	// Stdout is the output stream. If nil, os.Stdout is used.
	Stdout io.Writer
	// Stderr is the error stream. If nil, os.Stderr is used.
	Stderr io.Writer
	// Whether debug logging is enabled. False by default.
	DebugLogging bool
}

// Creates a new default instance of the CommandRunner.
// Passing nil will use the default values for RunnerOptions.
//
// These options will be used by default during interactive commands
// unless specifically overridden within the command run arguments.
func NewCommandRunner(opt *RunnerOptions) CommandRunner {
	if opt == nil {
		opt = &RunnerOptions{}
	}

	runner := &commandRunner{
		stdin:        opt.Stdin,
		stdout:       opt.Stdout,
		stderr:       opt.Stderr,
		debugLogging: opt.DebugLogging,
	}

	if runner.stdin == nil {
		runner.stdin = os.Stdin
	}

	if runner.stdout == nil {
		runner.stdout = os.Stdout
	}

	if runner.stderr == nil {
		runner.stderr = os.Stderr
	}

	return runner
}

// commandRunner is the default private implementation of the CommandRunner interface
// This implementation executes actual commands on the underlying console/shell
type commandRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	// Whether debugLogging logging is enabled
	debugLogging bool
}

// Run runs the command specified in 'args'.
//
// Returns a RunResult that is the result of the command.
//   - If interactive is true, standard input/output/error are not captured in the returned result.
//     Instead they are attached to the runner's standard streams.
//   - If the underlying command exits unsuccessfully, *ExitError is returned. Other possible errors would likely be I/O
//     errors or context cancellation.
func (r *commandRunner) Run(ctx context.Context, args RunArgs) (RunResult, error) {
	cmd := exec.CommandContext(ctx, args.Cmd, args.Args...)
	cmd.Env = appendEnv(args.Env)

	var stdout, stderr bytes.Buffer

	if args.Interactive {
		cmd.Stdin = r.stdin
		cmd.Stdout = r.stdout
		cmd.Stderr = r.stderr
	} else {
		cmd.Stdin = new(bytes.Buffer)
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	logTitle := strings.Builder{}
	logBody := strings.Builder{}
	defer func() {
		logTitle.WriteString(logBody.String())
		log.Print(logTitle.String())
	}()

	logTitle.WriteString(fmt.Sprintf("Run exec: '%s %s' ",
		args.Cmd,
		redactSensitiveData(
			strings.Join(redactSensitiveArgs(args.Args, args.SensitiveData), " "))))

	if r.debugLogging && len(args.Env) > 0 {
		logBody.WriteString("Additional env:\n")
		for _, kv := range args.Env {
			logBody.WriteString(fmt.Sprintf("   %s\n", kv))
		}
	}

	err := cmd.Run()

	result := RunResult{
		ExitCode: -1,
	}

	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if !args.Interactive {
		result.Stdout = stdout.String()
		result.Stderr = stderr.String()

		if r.debugLogging {
			if logStdErr := strings.TrimSuffix(redactSensitiveData(result.Stderr), "\n"); len(logStdErr) > 0 {
				logBody.WriteString(fmt.Sprintf(
					"-------------------------------------stderr-------------------------------------------\n%s\n",
					logStdErr))
			}
		}
	}

	logTitle.WriteString(fmt.Sprintf(", exit code: %d\n", result.ExitCode))

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		err = NewExitError(exitErr, args.Cmd, result.Stdout, result.Stderr, !args.Interactive)
	}

	return result, err
}

// ToolInPath checks to see if a program can be found on the PATH, as exec.LookPath does.
// Returns an error wrapping exec.ErrNotFound when the program is missing.
func (r *commandRunner) ToolInPath(name string) error {
	_, err := exec.LookPath(name)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, exec.ErrNotFound):
		return fmt.Errorf("%s: %w", name, exec.ErrNotFound)
	default:
		return fmt.Errorf("failed searching for `%s` on PATH: %w", name, err)
	}
}

func appendEnv(env []string) []string {
	if len(env) > 0 {
		return append(os.Environ(), env...)
	}

	return nil
}

const cRedacted = "<redacted>"

func redactSensitiveArgs(args []string, sensitiveDataMatch []string) []string {
	if len(sensitiveDataMatch) == 0 {
		return args
	}
	redactedArgs := make([]string, len(args))
	for i, arg := range args {
		redacted := arg
		for _, sensitiveData := range sensitiveDataMatch {
			redacted = strings.ReplaceAll(redacted, sensitiveData, cRedacted)
		}
		redactedArgs[i] = redacted
	}
	return redactedArgs
}

var accessTokenRegex = regexp.MustCompile(`"accessToken": ".*"`)

func redactSensitiveData(msg string) string {
	return accessTokenRegex.ReplaceAllString(msg, `"accessToken": "`+cRedacted+`"`)
}
