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

	cliUtils "github.com/Fantom-foundation/Intcode/go/cmd/intcode/cli"
	"github.com/Fantom-foundation/Intcode/go/compose/amplifier"
	"github.com/urfave/cli/v2"
)

var AmplifyCmd = cliUtils.AddCommonFlags(cli.Command{
	Action:    doAmplify,
	Name:      "amplify",
	Usage:     "Searches the phase settings maximizing the output of an amplifier series",
	ArgsUsage: "<program>",
	Flags: []cli.Flag{
		cliUtils.VmFlag,
		cliUtils.PhasesFlag,
		cliUtils.FeedbackFlag,
		cliUtils.JobsFlag,
	},
})

func doAmplify(context *cli.Context) error {
	program, err := loadProgram(context)
	if err != nil {
		return err
	}
	factory, err := cliUtils.VmFlag.Fetch(context)
	if err != nil {
		return err
	}

	feedback := cliUtils.FeedbackFlag.Fetch(context)
	defaults := []int64{0, 1, 2, 3, 4}
	if feedback {
		defaults = []int64{5, 6, 7, 8, 9}
	}
	phases, err := cliUtils.PhasesFlag.Fetch(context, defaults)
	if err != nil {
		return err
	}
	jobs := cliUtils.JobsFlag.Fetch(context)

	result, err := amplifier.MaxSignal(context.Context, program, phases, feedback, jobs, factory)
	if err != nil {
		return err
	}
	fmt.Fprintf(context.App.Writer, "Best phase settings %v produce signal %v\n", result.Phases, result.Signal)
	return nil
}
