// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileConfigManager loads and saves configuration files.
type FileConfigManager interface {
	// Save writes the configuration to filePath, creating the parent directory if needed.
	Save(config Config, filePath string) error
	Load(filePath string) (Config, error)
}

// NewFileConfigManager creates a new FileConfigManager instance
func NewFileConfigManager(configManager Manager) FileConfigManager {
	return &fileConfigManager{
		manager: configManager,
	}
}

type fileConfigManager struct {
	manager Manager
}

func (m *fileConfigManager) Load(filePath string) (Config, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed opening configuration file: %w", err)
	}
	defer file.Close()

	return m.manager.Load(file)
}

func (m *fileConfigManager) Save(c Config, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), permissionDirectoryOwnerOnly); err != nil {
		return fmt.Errorf("failed creating config directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, permissionFileOwnerOnly)
	if err != nil {
		return fmt.Errorf("failed creating config file: %w", err)
	}
	defer file.Close()

	return m.manager.Save(c, file)
}

// UserConfigManager loads and saves the user-wide configuration file.
type UserConfigManager interface {
	Load() (Config, error)
	Save(Config) error
}

// NewUserConfigManager creates a UserConfigManager backed by config.json in the user config directory.
func NewUserConfigManager(fileConfigManager FileConfigManager) UserConfigManager {
	return &userConfigManager{
		fileConfigManager: fileConfigManager,
	}
}

type userConfigManager struct {
	fileConfigManager FileConfigManager
}

func userConfigPath() (string, error) {
	configDir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, configFileName), nil
}

// Load returns an empty configuration when the file does not exist yet.
func (m *userConfigManager) Load() (Config, error) {
	configFilePath, err := userConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := m.fileConfigManager.Load(configFilePath)
	if errors.Is(err, fs.ErrNotExist) {
		return NewEmptyConfig(), nil
	} else if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (m *userConfigManager) Save(c Config) error {
	configFilePath, err := userConfigPath()
	if err != nil {
		return err
	}

	return m.fileConfigManager.Save(c, configFilePath)
}
