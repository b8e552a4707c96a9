// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mockexec

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	azdexec "github.com/azure/acactl/pkg/exec"
)

type CommandWhenPredicate func(args azdexec.RunArgs, command string) bool
type RespondFn func(args azdexec.RunArgs) (azdexec.RunResult, error)

// MockCommandRunner is a mock implementation of exec.CommandRunner
type MockCommandRunner struct {
	mu          sync.Mutex
	expressions []*CommandExpression
	missing     map[string]bool
	calls       []azdexec.RunArgs
}

func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{
		missing: map[string]bool{},
	}
}

func (m *MockCommandRunner) Run(ctx context.Context, args azdexec.RunArgs) (azdexec.RunResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, args)

	var match *CommandExpression
	command := fmt.Sprintf("%s %s", args.Cmd, strings.Join(args.Args, " "))
	for _, expr := range m.expressions {
		if expr.predicateFn(args, command) {
			match = expr
			break
		}
	}
	m.mu.Unlock()

	if match == nil {
		panic(fmt.Sprintf("No mock found for command: '%s'", command))
	}

	if match.respondFn != nil {
		return match.respondFn(args)
	}

	return match.response, match.error
}

func (m *MockCommandRunner) ToolInPath(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.missing[name] {
		return fmt.Errorf("%s: %w", name, exec.ErrNotFound)
	}

	return nil
}

// MarkMissing makes ToolInPath report the named tool as absent.
func (m *MockCommandRunner) MarkMissing(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.missing[name] = true
}

// Calls returns the arguments of every command run so far.
func (m *MockCommandRunner) Calls() []azdexec.RunArgs {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]azdexec.RunArgs{}, m.calls...)
}

func (m *MockCommandRunner) When(predicate CommandWhenPredicate) *CommandExpression {
	expr := CommandExpression{
		runner:      m,
		predicateFn: predicate,
	}

	m.mu.Lock()
	m.expressions = append(m.expressions, &expr)
	m.mu.Unlock()

	return &expr
}

type CommandExpression struct {
	response    azdexec.RunResult
	error       error
	respondFn   RespondFn
	runner      *MockCommandRunner
	predicateFn CommandWhenPredicate
}

func (e *CommandExpression) Respond(response azdexec.RunResult) *MockCommandRunner {
	e.response = response
	return e.runner
}

func (e *CommandExpression) RespondFn(respondFn RespondFn) *MockCommandRunner {
	e.respondFn = respondFn
	return e.runner
}

func (e *CommandExpression) SetError(err error) *MockCommandRunner {
	e.error = err
	return e.runner
}
