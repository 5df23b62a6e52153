// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package machine_test

import (
	"strings"

	"github.com/Fantom-foundation/Intcode/go/intcode"
	"github.com/Fantom-foundation/Intcode/go/interpreter/icvm"
	"golang.org/x/exp/slices"
)

func init() {
	icvm.RegisterExperimentalConfigurations()
}

func getAllMachineVariantsForTests() []string {
	// logging variants write every instruction to stderr
	return slices.DeleteFunc(
		intcode.GetRegisteredMachineNames(),
		func(s string) bool { return strings.Contains(s, "logging") },
	)
}
