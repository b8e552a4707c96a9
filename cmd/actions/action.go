// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package actions contains the application logic that handles acactl modes.
package actions

import (
	"context"
)

// Define a message as the completion of an Action.
type ResultMessage struct {
	Header   string
	FollowUp string
}

// Define the Action outputs.
type ActionResult struct {
	Message *ResultMessage
}

// Action is the representation of the application logic of a CLI mode.
type Action interface {
	// Run executes the mode.
	Run(ctx context.Context) (*ActionResult, error)
}
