// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"code.hybscloud.com/fortio"
	"github.com/charmbracelet/log"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

func newReplCmd(logger *log.Logger, cfg config) *cobra.Command {
	var optsFlag string

	cmd := &cobra.Command{
		Use:   "repl <file>",
		Short: "Interactively step through a file's records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := openForRead(path)
			if err != nil {
				return err
			}
			defer f.Close()

			opts := fortio.ParseOptions(resolveOpts(optsFlag, cfg))
			return runRepl(logger, f, opts)
		},
	}
	cmd.Flags().StringVar(&optsFlag, "opts", "", "fortio option string (default from config or \"\")")
	return cmd
}

func runRepl(logger *log.Logger, f fortio.Stream, opts fortio.Options) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	index := 0
	fmt.Println("fortiocat repl — commands: next, skip <n>, sizeof, quit")
	for {
		input, err := line.Prompt("fortiocat> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}
			return fmt.Errorf("fortiocat: reading input: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		fields := strings.Fields(input)
		switch fields[0] {
		case "quit", "exit", "q":
			return nil

		case "sizeof":
			n, err := fortio.Sizeof(f, opts)
			if err != nil {
				fmt.Println(describeErr(err))
				continue
			}
			fmt.Printf("next record holds %d elements\n", n)

		case "next":
			n, err := fortio.Sizeof(f, opts)
			if err != nil {
				fmt.Println(describeErr(err))
				continue
			}
			buf := make([]byte, n*opts.ElementSize())
			size := n
			if err := fortio.Get(f, opts, &size, buf); err != nil {
				fmt.Println(describeErr(err))
				continue
			}
			fmt.Printf("record %d: %d elements: %s\n", index, n, previewRecord(opts, buf))
			index++

		case "skip":
			n := 1
			if len(fields) >= 2 {
				if v, err := strconv.Atoi(fields[1]); err == nil {
					n = v
				}
			}
			if err := fortio.Skip(f, opts, n); err != nil {
				fmt.Println(describeErr(err))
				continue
			}
			index += n
			fmt.Printf("skipped %d record(s)\n", n)

		default:
			fmt.Printf("unknown command: %s\n", fields[0])
		}
	}
}
