// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package input

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-colorable"
)

// ConfirmToken is the only answer that accepts a confirmation.
const ConfirmToken = "y"

type Console interface {
	// Prints out a message to the underlying console write
	Message(ctx context.Context, message string)
	// Prompts the user for a single value
	Prompt(ctx context.Context, options ConsoleOptions) (string, error)
	// Asks a yes/no question. Only the exact answer "y" confirms; anything else, including an empty line, declines.
	Confirm(ctx context.Context, options ConsoleOptions) (bool, error)
	// Gets the underlying streams of the console
	Handles() ConsoleHandles
	// Whether the console may block waiting for input
	IsNoPromptMode() bool
}

type ConsoleOptions struct {
	Message      string
	Help         string
	DefaultValue any
}

type ConsoleHandles struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type AskerConsole struct {
	asker    Asker
	handles  ConsoleHandles
	noPrompt bool
}

func (c *AskerConsole) Message(ctx context.Context, message string) {
	if _, err := fmt.Fprintln(c.handles.Stdout, message); err != nil {
		log.Printf("error printing line: %v", err)
	}
}

func (c *AskerConsole) Prompt(ctx context.Context, options ConsoleOptions) (string, error) {
	var defaultValue string
	if value, ok := options.DefaultValue.(string); ok {
		defaultValue = value
	}

	survey := &survey.Input{
		Message: options.Message,
		Default: defaultValue,
		Help:    options.Help,
	}

	var response string

	if err := c.asker(survey, &response); err != nil {
		return "", err
	}

	return response, nil
}

func (c *AskerConsole) Confirm(ctx context.Context, options ConsoleOptions) (bool, error) {
	if c.noPrompt {
		c.Message(ctx, fmt.Sprintf("%s (declined, prompts are disabled)", options.Message))
		return false, nil
	}

	// A free-text prompt keeps the answer exact; survey.Confirm would also accept "yes" or "Y".
	response, err := c.Prompt(ctx, ConsoleOptions{
		Message: options.Message,
		Help:    options.Help,
	})
	if err != nil {
		return false, err
	}

	return response == ConfirmToken, nil
}

func (c *AskerConsole) Handles() ConsoleHandles {
	return c.handles
}

func (c *AskerConsole) IsNoPromptMode() bool {
	return c.noPrompt
}

// NewConsole creates a console reading and writing the given handles.
// Nil handles default to the process streams.
func NewConsole(noPrompt bool, isTerminal bool, handles ConsoleHandles) Console {
	if handles.Stdin == nil {
		handles.Stdin = os.Stdin
	}

	if handles.Stdout == nil {
		handles.Stdout = colorable.NewColorableStdout()
	}

	if handles.Stderr == nil {
		handles.Stderr = colorable.NewColorableStderr()
	}

	return &AskerConsole{
		asker:    NewAsker(noPrompt, isTerminal, handles.Stdout, handles.Stdin),
		handles:  handles,
		noPrompt: noPrompt,
	}
}
