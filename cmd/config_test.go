// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"os"
	"path/filepath"
)

func writeUserConfig(configDir string, content string) error {
	return os.WriteFile(filepath.Join(configDir, "config.json"), []byte(content), 0600)
}
