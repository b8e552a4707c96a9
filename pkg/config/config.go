// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package config stores user-wide acactl settings, such as the default name and tenant globs.
package config

import (
	"fmt"
	"strings"
)

const (
	// DefaultGlobKey holds the app name glob used when --glob is not set.
	DefaultGlobKey = "defaults.glob"
	// DefaultTenantKey holds the subscription name glob used when --tenant is not set.
	DefaultTenantKey = "defaults.tenant"
)

// Config is a tree of settings addressed by dot separated paths, e.g. "defaults.glob".
type Config interface {
	Raw() map[string]any
	Get(path string) (any, bool)
	GetString(path string) (string, bool)
	Set(path string, value any) error
	Unset(path string) error
	IsEmpty() bool
}

// NewEmptyConfig creates an empty configuration object.
func NewEmptyConfig() Config {
	return NewConfig(nil)
}

// NewConfig creates a configuration object populated with the given data.
func NewConfig(data map[string]any) Config {
	if data == nil {
		data = map[string]any{}
	}

	return &config{
		data: data,
	}
}

type config struct {
	data map[string]any
}

func (c *config) IsEmpty() bool {
	return len(c.data) == 0
}

func (c *config) Raw() map[string]any {
	return c.data
}

// Sets a value at the specified location, creating intermediate nodes as needed
func (c *config) Set(path string, value any) error {
	parts := strings.Split(path, ".")
	currentNode := c.data
	for i, part := range parts {
		if i == len(parts)-1 {
			currentNode[part] = value
			return nil
		}

		next, has := currentNode[part]
		if !has || next == nil {
			node := map[string]any{}
			currentNode[part] = node
			currentNode = node
			continue
		}

		node, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("failed converting node at path '%s' to map", part)
		}
		currentNode = node
	}

	return nil
}

// Removes the value stored at the specified path.
// Unsetting a path that does not exist is a no-op.
func (c *config) Unset(path string) error {
	parts := strings.Split(path, ".")
	currentNode := c.data
	for i, part := range parts {
		if i == len(parts)-1 {
			delete(currentNode, part)
			return nil
		}

		next, has := currentNode[part]
		if !has || next == nil {
			return nil
		}

		node, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("failed converting node at path '%s' to map", part)
		}
		currentNode = node
	}

	return nil
}

// Gets the value stored at the specified location
func (c *config) Get(path string) (any, bool) {
	parts := strings.Split(path, ".")
	currentNode := c.data
	for i, part := range parts {
		value, has := currentNode[part]
		if !has {
			return nil, false
		}

		if i == len(parts)-1 {
			return value, true
		}

		node, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		currentNode = node
	}

	return nil, false
}

func (c *config) GetString(path string) (string, bool) {
	value, ok := c.Get(path)
	if !ok {
		return "", false
	}

	str, ok := value.(string)
	return str, ok
}
