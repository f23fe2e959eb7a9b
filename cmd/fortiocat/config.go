// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// config holds operator-configurable defaults, loaded from .fortiocatrc.
type config struct {
	DefaultOpts string `json:"defaultOpts"`
	Blocksize   any    `json:"blocksize"`
	LogLevel    string `json:"logLevel"`
}

const configFileName = ".fortiocatrc"

// loadConfig reads .fortiocatrc from the current directory, falling back to
// $HOME, allowing comments and trailing commas (Human JSON). A missing file
// in either location is not an error: loadConfig returns the zero config.
func loadConfig() (config, error) {
	for _, dir := range configSearchDirs() {
		path := filepath.Join(dir, configFileName)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return config{}, fmt.Errorf("fortiocat: reading %s: %w", path, err)
		}
		return parseConfig(data, path)
	}
	return config{}, nil
}

func configSearchDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

func parseConfig(data []byte, path string) (config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return config{}, fmt.Errorf("fortiocat: %s is not valid Human JSON: %w", path, err)
	}
	var cfg config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return config{}, fmt.Errorf("fortiocat: %s: %w", path, err)
	}
	return cfg, nil
}
