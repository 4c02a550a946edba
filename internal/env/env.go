// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"os"
	"path/filepath"
)

// ConfigDirEnv names the environment variable that relocates the
// configuration directory.
const ConfigDirEnv = "CPTB_CONFIG_DIR"

// ConfigDir returns the directory holding kits.json and settings.json.
// An explicit dir wins, then $CPTB_CONFIG_DIR, then <home>/.cptb.
// The directory is never created: cptb only reads its configuration.
func ConfigDir(dir string) (string, error) {
	if dir != "" {
		return filepath.Abs(dir)
	}
	if dir = os.Getenv(ConfigDirEnv); dir != "" {
		return filepath.Abs(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cptb"), nil
}
