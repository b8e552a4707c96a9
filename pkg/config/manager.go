// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	configDirName  = ".acactl"
	configFileName = "config.json"

	permissionDirectoryOwnerOnly os.FileMode = 0700
	permissionFileOwnerOnly      os.FileMode = 0600
)

// Manager reads and writes configuration data as JSON.
type Manager interface {
	Save(config Config, writer io.Writer) error
	Load(reader io.Reader) (Config, error)
}

type manager struct {
}

// NewManager creates a new JSON configuration manager.
func NewManager() Manager {
	return &manager{}
}

func (m *manager) Save(config Config, writer io.Writer) error {
	configJson, err := json.MarshalIndent(config.Raw(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed marshalling config JSON: %w", err)
	}

	if _, err := writer.Write(configJson); err != nil {
		return fmt.Errorf("failed writing configuration data: %w", err)
	}

	return nil
}

func (m *manager) Load(reader io.Reader) (Config, error) {
	jsonBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed reading configuration: %w", err)
	}

	return Parse(jsonBytes)
}

// Parse parses configuration JSON into a Config.
func Parse(configJson []byte) (Config, error) {
	var data map[string]any
	if err := json.Unmarshal(configJson, &data); err != nil {
		return nil, fmt.Errorf("failed unmarshalling configuration JSON: %w", err)
	}

	return NewConfig(data), nil
}

// GetUserConfigDir returns the directory holding user-wide configuration.
// ACACTL_CONFIG_DIR overrides the default of ~/.acactl. The directory is not created.
func GetUserConfigDir() (string, error) {
	if configDirPath := os.Getenv("ACACTL_CONFIG_DIR"); configDirPath != "" {
		return configDirPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine current home directory: %w", err)
	}

	return filepath.Join(homeDir, configDirName), nil
}
