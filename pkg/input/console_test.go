// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package input

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestConsole(noPrompt bool, stdin string) (Console, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	console := NewConsole(noPrompt, false, ConsoleHandles{
		Stdin:  bytes.NewBufferString(stdin),
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
	})

	return console, stdout
}

func TestConfirm(t *testing.T) {
	const message = "Are you sure you want to stop these apps? [y/N]"

	answers := map[string]bool{
		"y\n":     true,
		"y":       true,
		"  y  \n": true,
		"Y\n":     false,
		"yes\n":   false,
		"n\n":     false,
		"\n":      false,
		"":        false,
		"yy\n":    false,
	}

	for answer, expected := range answers {
		t.Run(answer, func(t *testing.T) {
			console, stdout := newTestConsole(false, answer)

			confirmed, err := console.Confirm(context.Background(), ConsoleOptions{Message: message})
			require.NoError(t, err)
			require.Equal(t, expected, confirmed)
			require.Equal(t, message+" ", stdout.String())
		})
	}

	t.Run("NoPromptDeclines", func(t *testing.T) {
		console, stdout := newTestConsole(true, "y\n")

		confirmed, err := console.Confirm(context.Background(), ConsoleOptions{Message: message})
		require.NoError(t, err)
		require.False(t, confirmed)
		require.Contains(t, stdout.String(), "declined")
	})
}

func TestPrompt(t *testing.T) {
	t.Run("ReadsOneLine", func(t *testing.T) {
		stdin := bytes.NewBufferString("1\nremaining")
		console := NewConsole(false, false, ConsoleHandles{Stdin: stdin, Stdout: &bytes.Buffer{}})

		value, err := console.Prompt(context.Background(), ConsoleOptions{Message: "Index:"})
		require.NoError(t, err)
		require.Equal(t, "1", value)
		require.Equal(t, "remaining", stdin.String())
	})

	t.Run("Default", func(t *testing.T) {
		console, stdout := newTestConsole(false, "\n")

		value, err := console.Prompt(context.Background(), ConsoleOptions{Message: "Index:", DefaultValue: "0"})
		require.NoError(t, err)
		require.Equal(t, "0", value)
		require.Contains(t, stdout.String(), "default 0")
	})

	t.Run("NoPromptWithoutDefault", func(t *testing.T) {
		console, _ := newTestConsole(true, "1\n")

		_, err := console.Prompt(context.Background(), ConsoleOptions{Message: "Index:"})
		require.True(t, errors.Is(err, ErrNoDefaultResponse))
	})

	t.Run("NoPromptWithDefault", func(t *testing.T) {
		console, _ := newTestConsole(true, "")

		value, err := console.Prompt(context.Background(), ConsoleOptions{Message: "Index:", DefaultValue: "2"})
		require.NoError(t, err)
		require.Equal(t, "2", value)
	})
}

func TestMessage(t *testing.T) {
	console, stdout := newTestConsole(false, "")
	console.Message(context.Background(), "Stopping 2 apps")
	require.Equal(t, "Stopping 2 apps\n", stdout.String())
	require.False(t, console.IsNoPromptMode())
}
