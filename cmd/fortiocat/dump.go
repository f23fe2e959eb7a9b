// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"code.hybscloud.com/fortio"
	"code.hybscloud.com/fortio/internal/bo"
	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
)

func newDumpCmd(logger *log.Logger, cfg config) *cobra.Command {
	var optsFlag string
	var limit int
	var useGzip bool

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print each record's index, element count, and leading values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := openForRead(path)
			if err != nil {
				return err
			}
			defer f.Close()

			var gz *gzip.Writer
			var rawOut *os.File
			if useGzip {
				rawOut, err = os.Create(path + ".raw.gz")
				if err != nil {
					return fmt.Errorf("fortiocat: %w", err)
				}
				defer rawOut.Close()
				gz = gzip.NewWriter(rawOut)
				defer gz.Close()
			}

			opts := fortio.ParseOptions(resolveOpts(optsFlag, cfg))
			elemSize := opts.ElementSize()

			index := 0
			for limit <= 0 || index < limit {
				n, err := fortio.Sizeof(f, opts)
				if err != nil {
					if errors.Is(err, fortio.ErrEOF) {
						break
					}
					logger.Error("dump failed", "file", path, "record", index, "err", describeErr(err))
					return err
				}

				buf := make([]byte, n*elemSize)
				size := n
				if err := fortio.Get(f, opts, &size, buf); err != nil {
					logger.Error("dump failed", "file", path, "record", index, "err", describeErr(err))
					return err
				}

				fmt.Printf("record %d: %d elements: %s\n", index, n, previewRecord(opts, buf))

				if gz != nil {
					if _, err := gz.Write(buf); err != nil {
						return fmt.Errorf("fortiocat: writing raw mirror: %w", err)
					}
				}
				index++
			}
			logger.Info("dump complete", "file", path, "records", index)
			return nil
		},
	}
	cmd.Flags().StringVar(&optsFlag, "opts", "", "fortio option string (default from config or \"\")")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum records to print (0 = unlimited)")
	cmd.Flags().BoolVar(&useGzip, "gzip", false, "mirror each record's raw payload into <file>.raw.gz")
	return cmd
}

// previewRecord renders up to the first 4 decoded elements of buf.
func previewRecord(opts fortio.Options, buf []byte) string {
	const maxShown = 4
	elemSize := opts.ElementSize()
	n := len(buf) / elemSize
	shown := n
	if shown > maxShown {
		shown = maxShown
	}

	// fortio.Get already byte-swapped buf into host order whenever
	// opts.Transform applied a swap (elemSize > 1 and the stream's
	// declared order differs from the host's); decode with whichever
	// order buf is actually in, not opts.Endian unconditionally.
	decodeOrder := opts.Endian
	if opts.Transform && elemSize > 1 && opts.Endian != bo.Native() {
		decodeOrder = bo.Native()
	}

	out := "["
	for i := 0; i < shown; i++ {
		if i > 0 {
			out += " "
		}
		chunk := buf[i*elemSize : (i+1)*elemSize]
		switch opts.Kind {
		case fortio.Int32:
			out += fmt.Sprintf("%d", int32(decodeOrder.Uint32(chunk)))
		case fortio.Float32:
			out += fmt.Sprintf("%g", math.Float32frombits(decodeOrder.Uint32(chunk)))
		case fortio.Float64:
			out += fmt.Sprintf("%g", math.Float64frombits(decodeOrder.Uint64(chunk)))
		case fortio.String8, fortio.Byte:
			out += fmt.Sprintf("%q", chunk)
		}
	}
	if n > shown {
		out += " ..."
	}
	out += "]"
	return out
}
