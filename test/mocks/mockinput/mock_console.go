// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mockinput

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/azure/acactl/pkg/input"
)

// A predicate function definition for registering expressions
type WhenPredicate func(options input.ConsoleOptions) bool

// An action definition for providing responses or errors for an interaction
type RespondFn func(options input.ConsoleOptions) (any, error)

// A mock implementation of the input.Console interface
type MockConsole struct {
	mu          sync.Mutex
	expressions []*MockConsoleExpression
	log         []string
	noPrompt    bool
	stdout      *bytes.Buffer
}

func NewMockConsole() *MockConsole {
	return &MockConsole{
		expressions: []*MockConsoleExpression{},
		stdout:      &bytes.Buffer{},
	}
}

// Output returns every message and prompt shown so far.
func (c *MockConsole) Output() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string{}, c.log...)
}

// Stdout returns the text written directly to the console's stdout handle.
func (c *MockConsole) Stdout() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stdout.String()
}

func (c *MockConsole) SetNoPromptMode(noPrompt bool) {
	c.noPrompt = noPrompt
}

func (c *MockConsole) IsNoPromptMode() bool {
	return c.noPrompt
}

func (c *MockConsole) Handles() input.ConsoleHandles {
	return input.ConsoleHandles{
		Stdout: &lockedWriter{mu: &c.mu, w: c.stdout},
		Stderr: io.Discard,
		Stdin:  bytes.NewBufferString(""),
	}
}

// Prints a message to the console
func (c *MockConsole) Message(ctx context.Context, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.log = append(c.log, message)
}

// Prints a confirmation message to the console for the user to confirm
func (c *MockConsole) Confirm(ctx context.Context, options input.ConsoleOptions) (bool, error) {
	c.Message(ctx, options.Message)
	value, err := c.respond("Confirm", options)
	if err != nil {
		return false, err
	}

	return value.(bool), nil
}

// Writes a single answer prompt to the console for the user to complete
func (c *MockConsole) Prompt(ctx context.Context, options input.ConsoleOptions) (string, error) {
	c.Message(ctx, options.Message)
	value, err := c.respond("Prompt", options)
	if err != nil {
		return "", err
	}

	return value.(string), nil
}

// Finds a matching mock expression and returns the configured value
func (c *MockConsole) respond(command string, options input.ConsoleOptions) (any, error) {
	c.mu.Lock()
	var match *MockConsoleExpression

	for _, expr := range c.expressions {
		if command == expr.command && expr.predicateFn(options) {
			match = expr
			break
		}
	}
	c.mu.Unlock()

	if match == nil {
		panic(fmt.Sprintf("No mock found for command: '%s' with options: '%+v'", command, options))
	}

	return match.respond(options)
}

// Registers a prompt expression for mocking in unit tests
func (c *MockConsole) WhenPrompt(predicate WhenPredicate) *MockConsoleExpression {
	return c.when("Prompt", predicate)
}

// Registers a confirmation expression for mocking in unit tests
func (c *MockConsole) WhenConfirm(predicate WhenPredicate) *MockConsoleExpression {
	return c.when("Confirm", predicate)
}

func (c *MockConsole) when(command string, predicate WhenPredicate) *MockConsoleExpression {
	expr := MockConsoleExpression{
		command:     command,
		console:     c,
		predicateFn: predicate,
	}

	c.mu.Lock()
	c.expressions = append(c.expressions, &expr)
	c.mu.Unlock()

	return &expr
}

// MockConsoleExpression is an expression with options response or error
type MockConsoleExpression struct {
	command     string
	respond     RespondFn
	console     *MockConsole
	predicateFn WhenPredicate
}

// Sets the response that will be returned for the current expression
func (e *MockConsoleExpression) Respond(value any) *MockConsole {
	e.respond = func(_ input.ConsoleOptions) (any, error) { return value, nil }
	return e.console
}

// Sets the error that will be returned for the current expression
func (e *MockConsoleExpression) SetError(err error) *MockConsole {
	e.respond = func(_ input.ConsoleOptions) (any, error) { return nil, err }
	return e.console
}

// Sets the function that will be used to provide the response or error for the current expression
func (e *MockConsoleExpression) RespondFn(respond RespondFn) *MockConsole {
	e.respond = respond
	return e.console
}

type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (w *lockedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.w.Write(p)
}
