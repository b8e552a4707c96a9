// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package input

import (
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether both stdout and stdin are attached to an interactive terminal.
func IsTerminal(stdoutFd uintptr, stdinFd uintptr) bool {
	if forced, has := os.LookupEnv("ACACTL_FORCE_TTY"); has {
		return forced == "true" || forced == "1"
	}

	return (isatty.IsTerminal(stdoutFd) || isatty.IsCygwinTerminal(stdoutFd)) &&
		(isatty.IsTerminal(stdinFd) || isatty.IsCygwinTerminal(stdinFd))
}

// survey needs file descriptors to drive the terminal; fall back to the process streams otherwise.
func asFileReader(r io.Reader) terminal.FileReader {
	if fr, ok := r.(terminal.FileReader); ok {
		return fr
	}

	return os.Stdin
}

func asFileWriter(w io.Writer) terminal.FileWriter {
	if fw, ok := w.(terminal.FileWriter); ok {
		return fw
	}

	return os.Stdout
}
