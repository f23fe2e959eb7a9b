// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"code.hybscloud.com/fortio"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newSizeofCmd(logger *log.Logger, cfg config) *cobra.Command {
	var optsFlag string

	cmd := &cobra.Command{
		Use:   "sizeof <file>",
		Short: "Report the element count of the next record without consuming it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := openForRead(path)
			if err != nil {
				return err
			}
			defer f.Close()

			opts := fortio.ParseOptions(resolveOpts(optsFlag, cfg))
			n, err := fortio.Sizeof(f, opts)
			if err != nil {
				logger.Error("sizeof failed", "file", path, "err", describeErr(err))
				return err
			}
			logger.Info("sizeof", "file", path, "elements", n)
			fmt.Println(n)
			return nil
		},
	}
	cmd.Flags().StringVar(&optsFlag, "opts", "", "fortio option string (default from config or \"\")")
	return cmd
}
