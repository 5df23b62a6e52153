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

	"github.com/Fantom-foundation/Intcode/go/intcode"
	"github.com/urfave/cli/v2"
)

var VmsCmd = cli.Command{
	Action: doVms,
	Name:   "vms",
	Usage:  "Lists the available machine implementations",
}

func doVms(context *cli.Context) error {
	for _, name := range intcode.GetRegisteredMachineNames() {
		fmt.Fprintln(context.App.Writer, name)
	}
	return nil
}
