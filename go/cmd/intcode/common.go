// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Fantom-foundation/Intcode/go/intcode"
	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
)

const errWaitingForInput = intcode.ConstError("program is waiting for more input")

// programs caches parsed program files, since commands may instantiate
// many machines from the same file.
var programs = func() *intcode.ProgramCache {
	cache, err := intcode.NewProgramCache(16)
	if err != nil {
		panic(err)
	}
	return cache
}()

// loadProgram loads the program named by the first argument of the command.
func loadProgram(context *cli.Context) (intcode.Program, error) {
	if context.Args().Len() < 1 {
		return nil, fmt.Errorf("missing program file")
	}
	path := context.Args().First()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	program, err := programs.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return program, nil
}

// printThroughput summarizes the execution speed of the given machine, if it
// counts its instructions.
func printThroughput(out io.Writer, machine intcode.Machine, duration time.Duration) error {
	profiling, ok := machine.(intcode.ProfilingMachine)
	if !ok {
		_, err := fmt.Fprintf(out, "Run time: %v\n", duration)
		return err
	}
	if duration <= 0 {
		duration = time.Nanosecond
	}
	rate := float64(profiling.Steps()) / duration.Seconds()
	_, err := fmt.Fprintf(out, "Run time: %v, ~%s instructions per second\n",
		duration, unitconv.FormatPrefix(rate, unitconv.SI, 0),
	)
	if err != nil {
		return err
	}
	return profiling.DumpProfile(out)
}
