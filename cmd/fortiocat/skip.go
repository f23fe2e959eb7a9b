// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"code.hybscloud.com/fortio"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newSkipCmd(logger *log.Logger, cfg config) *cobra.Command {
	var optsFlag string
	var n int

	cmd := &cobra.Command{
		Use:   "skip <file>",
		Short: "Skip N records and report the resulting stream offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := openForRead(path)
			if err != nil {
				return err
			}
			defer f.Close()

			opts := fortio.ParseOptions(resolveOpts(optsFlag, cfg))
			if err := fortio.Skip(f, opts, n); err != nil {
				logger.Error("skip failed", "file", path, "n", n, "err", describeErr(err))
				return err
			}
			pos, _ := f.Seek(0, io.SeekCurrent)
			logger.Info("skip", "file", path, "n", n, "offset", pos)
			return nil
		},
	}
	cmd.Flags().StringVar(&optsFlag, "opts", "", "fortio option string (default from config or \"\")")
	cmd.Flags().IntVarP(&n, "count", "n", 1, "number of records to skip")
	return cmd
}
