//go:build mage
// +build mage

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/magefile/mage/mg"
)

type ACACTL mg.Namespace

// Build compiles acactl into ./bin.
func (a ACACTL) Build(ctx context.Context) error {
	output := "./bin/acactl"
	if runtime.GOOS == "windows" {
		output += ".exe"
	}

	cmdStr, cmd := runIn(ctx, ".", "go", "build", "-o", output, ".")
	fmt.Println(cmdStr)
	return cmd()
}

// Test runs the unit tests of every package.
func (a ACACTL) Test(ctx context.Context) error {
	cmdStr, cmd := runIn(ctx, ".", "go", "test", "./...")
	fmt.Println(cmdStr)
	return cmd()
}

// Vet runs go vet over every package.
func (a ACACTL) Vet(ctx context.Context) error {
	cmdStr, cmd := runIn(ctx, ".", "go", "vet", "./...")
	fmt.Println(cmdStr)
	return cmd()
}

// All vets, tests and builds acactl.
func (a ACACTL) All(ctx context.Context) {
	mg.SerialCtxDeps(ctx, a.Vet, a.Test, a.Build)
}

func runIn(ctx context.Context, cwd string, cmd string, args ...string) (string, func() error) {
	c := exec.CommandContext(ctx, cmd, args...)
	c.Dir = cwd
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.String(), func() error {
		return c.Run()
	}
}
