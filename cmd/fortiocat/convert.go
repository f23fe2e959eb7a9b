// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"code.hybscloud.com/fortio"
	"github.com/charmbracelet/log"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

func newConvertCmd(logger *log.Logger, cfg config) *cobra.Command {
	var fromOpts, toOpts string

	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Re-encode every record of in (read with --from-opts) into out (written with --to-opts)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, outPath := args[0], args[1]
			return runConvert(logger, cfg, inPath, outPath, fromOpts, toOpts)
		},
	}
	cmd.Flags().StringVar(&fromOpts, "from-opts", "", "fortio option string for the input file")
	cmd.Flags().StringVar(&toOpts, "to-opts", "", "fortio option string for the output file")
	return cmd
}

func runConvert(logger *log.Logger, cfg config, inPath, outPath, fromOpts, toOpts string) error {
	in, err := openForRead(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".fortiocat-convert-*")
	if err != nil {
		return fmt.Errorf("fortiocat: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	readOpts := fortio.ParseOptions(resolveOpts(fromOpts, cfg))
	writeOpts := fortio.ParseOptions(resolveOpts(toOpts, cfg))

	count := 0
	for {
		n, err := fortio.Sizeof(in, readOpts)
		if err != nil {
			if errors.Is(err, fortio.ErrEOF) {
				break
			}
			tmp.Close()
			logger.Error("convert failed reading", "file", inPath, "record", count, "err", describeErr(err))
			return err
		}

		buf := make([]byte, n*readOpts.ElementSize())
		size := n
		if err := fortio.Get(in, readOpts, &size, buf); err != nil {
			tmp.Close()
			logger.Error("convert failed reading", "file", inPath, "record", count, "err", describeErr(err))
			return err
		}

		if readOpts.ElementSize() != writeOpts.ElementSize() {
			tmp.Close()
			return fmt.Errorf("fortiocat: convert: element size mismatch between --from-opts (%d) and --to-opts (%d)",
				readOpts.ElementSize(), writeOpts.ElementSize())
		}
		if err := fortio.Put(tmp, writeOpts, n, buf); err != nil {
			tmp.Close()
			logger.Error("convert failed writing", "file", tmpPath, "record", count, "err", describeErr(err))
			return err
		}
		count++
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("fortiocat: %w", err)
	}

	src, err := os.Open(tmpPath)
	if err != nil {
		return fmt.Errorf("fortiocat: %w", err)
	}
	defer src.Close()

	if err := atomic.WriteFile(outPath, src); err != nil {
		return fmt.Errorf("fortiocat: publishing %s: %w", outPath, err)
	}

	logger.Info("convert complete", "in", inPath, "out", outPath, "records", count)
	return nil
}
