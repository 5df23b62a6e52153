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
	"github.com/Fantom-foundation/Intcode/go/compose/network"
	"github.com/urfave/cli/v2"
)

var NetworkCmd = cliUtils.AddCommonFlags(cli.Command{
	Action:    doNetwork,
	Name:      "network",
	Usage:     "Runs a network of machines and reports the packets observed by the NAT",
	ArgsUsage: "<program>",
	Flags: []cli.Flag{
		cliUtils.VmFlag,
		cliUtils.SizeFlag,
	},
})

func doNetwork(context *cli.Context) error {
	program, err := loadProgram(context)
	if err != nil {
		return err
	}
	factory, err := cliUtils.VmFlag.Fetch(context)
	if err != nil {
		return err
	}
	size := cliUtils.SizeFlag.Fetch(context)

	net, err := network.New(program, size, factory)
	if err != nil {
		return err
	}
	first, err := network.FirstNATPacket(net)
	if err != nil {
		return err
	}
	fmt.Fprintf(context.App.Writer, "First packet sent to the NAT: %v\n", first)

	net, err = network.New(program, size, factory)
	if err != nil {
		return err
	}
	repeated, err := network.FirstRepeatedDelivery(net)
	if err != nil {
		return err
	}
	fmt.Fprintf(context.App.Writer, "First packet delivered twice by the NAT: %v\n", repeated)
	return nil
}
