// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"code.hybscloud.com/fortio"
)

// resolveOpts returns flagVal if non-empty, otherwise the configured default
// options string, otherwise the empty string (fortio.DefaultOptions()).
func resolveOpts(flagVal string, cfg config) string {
	if flagVal != "" {
		return flagVal
	}
	return cfg.DefaultOpts
}

// resolveBlocksize interprets cfg.Blocksize, which may be a JSON number or
// one of the strings "numeric"/"string" selecting the matching canonical
// default. It returns 0 (underflow-allowed) if unset or unrecognized.
func resolveBlocksize(cfg config) int {
	switch v := cfg.Blocksize.(type) {
	case float64:
		return int(v)
	case string:
		switch v {
		case "numeric":
			return fortio.DefaultBlocksize(fortio.BlocksizeNumeric)
		case "string":
			return fortio.DefaultBlocksize(fortio.BlocksizeString)
		}
	}
	return 0
}

func openForRead(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fortiocat: %w", err)
	}
	return f, nil
}

// describeErr renders err with its stable fortio error code when err
// originates from the engine, for operator-facing messages.
func describeErr(err error) string {
	if err == nil {
		return "ok"
	}
	return fmt.Sprintf("%v (code=%d)", err, fortio.Code(err))
}
