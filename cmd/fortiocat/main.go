// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command fortiocat is an operator-facing front end over package fortio:
// inspect, skip, dump, and convert unformatted sequential record files from
// the shell, or step through one interactively.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	runID := uuid.New().String()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	}).With("run", runID)

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fortiocat",
		Short:         "Inspect and convert unformatted sequential record files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cfg, err := loadConfig()
	if err != nil {
		cobra.CheckErr(err)
	}
	if cfg.LogLevel != "" {
		if lvl, perr := log.ParseLevel(cfg.LogLevel); perr == nil {
			logger.SetLevel(lvl)
		}
	}

	cmd.AddCommand(newSizeofCmd(logger, cfg))
	cmd.AddCommand(newSkipCmd(logger, cfg))
	cmd.AddCommand(newDumpCmd(logger, cfg))
	cmd.AddCommand(newConvertCmd(logger, cfg))
	cmd.AddCommand(newReplCmd(logger, cfg))
	return cmd
}
