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
	"bufio"
	"fmt"
	"io"
	"time"

	cliUtils "github.com/Fantom-foundation/Intcode/go/cmd/intcode/cli"
	"github.com/Fantom-foundation/Intcode/go/compose/ascii"
	"github.com/Fantom-foundation/Intcode/go/intcode"
	"github.com/urfave/cli/v2"
)

var RunCmd = cliUtils.AddCommonFlags(cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "Runs an Intcode program until it halts",
	ArgsUsage: "<program>",
	Flags: []cli.Flag{
		cliUtils.VmFlag,
		cliUtils.InputFlag,
		cliUtils.PatchFlag,
		cliUtils.AsciiFlag,
		cliUtils.InteractiveFlag,
		cliUtils.StatsFlag,
	},
})

func doRun(context *cli.Context) error {
	program, err := loadProgram(context)
	if err != nil {
		return err
	}
	factory, err := cliUtils.VmFlag.Fetch(context)
	if err != nil {
		return err
	}
	inputs, err := cliUtils.InputFlag.Fetch(context)
	if err != nil {
		return err
	}
	patches, err := cliUtils.PatchFlag.Fetch(context)
	if err != nil {
		return err
	}

	machine, err := factory(program)
	if err != nil {
		return err
	}
	for _, patch := range patches {
		if err := machine.Set(patch.Address, patch.Value); err != nil {
			return fmt.Errorf("failed to patch address %d: %w", patch.Address, err)
		}
	}
	machine.SendInput(inputs...)

	out := context.App.Writer
	interactive := cliUtils.InteractiveFlag.Fetch(context)

	start := time.Now()
	if cliUtils.AsciiFlag.Fetch(context) {
		err = runText(machine, out, context.App.Reader, interactive)
	} else {
		err = runNumeric(machine, out, context.App.Reader, interactive)
	}
	duration := time.Since(start)
	if err != nil {
		return err
	}

	if cliUtils.StatsFlag.Fetch(context) {
		return printThroughput(context.App.ErrWriter, machine, duration)
	}
	return nil
}

// runNumeric runs the machine printing one output value per line. In
// interactive mode missing inputs are read from the console.
func runNumeric(machine intcode.Machine, out io.Writer, in io.Reader, interactive bool) error {
	machine.OnOutput(intcode.SinkFunc(func(value intcode.Word) error {
		_, err := fmt.Fprintln(out, value)
		return err
	}))
	if interactive {
		machine.QueueInput(intcode.Console(in, out))
	}
	if err := machine.Run(); err != nil {
		return err
	}
	if machine.IsWaitingForInput() {
		return errWaitingForInput
	}
	return nil
}

// runText runs the machine exchanging ASCII text. In interactive mode every
// time the machine waits for input a line is read from the console.
func runText(machine intcode.Machine, out io.Writer, in io.Reader, interactive bool) error {
	terminal := ascii.NewTerminal(machine)
	terminal.OnLine(func(line string) {
		fmt.Fprintln(out, line)
	})
	terminal.OnValue(func(value intcode.Word) {
		fmt.Fprintln(out, value)
	})

	console := bufio.NewScanner(in)
	for {
		if err := terminal.Run(); err != nil {
			return err
		}
		if machine.IsDone() {
			if pending := terminal.Pending(); pending != "" {
				fmt.Fprintln(out, pending)
			}
			return nil
		}
		if !interactive || !console.Scan() {
			return errWaitingForInput
		}
		terminal.SendLine(console.Text())
	}
}
