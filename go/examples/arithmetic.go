// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"math/big"

	"github.com/Fantom-foundation/Intcode/go/intcode"
)

func GetSumExample() Example {
	/* Computes 1 + 2 + ... + n:
	       0: IN   [100]            n
	       2: ADD  0 0 [101]        sum = 0
	       6: ADD  0 0 [102]        i = 0
	      10: LT   [102] [100] [103]
	      14: JZ   [103] 28
	      17: ADD  [102] 1 [102]    i++
	      21: ADD  [101] [102] [101]
	      25: JNZ  1 10
	      28: OUT  [101]
	      30: HALT
	*/
	return exampleSpec{
		Name:      "sum",
		program:   intcode.MustParseProgram("3,100,1101,0,0,101,1101,0,0,102,7,102,100,103,1006,103,28,1001,102,1,102,1,101,102,101,1105,1,10,4,101,99"),
		reference: sum,
	}.build()
}

func sum(n int64) intcode.Word {
	if n < 0 {
		return intcode.NewWord(0)
	}
	return intcode.NewWord(n * (n + 1) / 2)
}

func GetFactorialExample() Example {
	// Same as the sum example, multiplying instead of adding. Results exceed
	// 64 bits for arguments larger than 20.
	return exampleSpec{
		Name:      "factorial",
		program:   intcode.MustParseProgram("3,100,1101,1,0,101,1101,0,0,102,7,102,100,103,1006,103,28,1001,102,1,102,2,101,102,101,1105,1,10,4,101,99"),
		reference: factorial,
	}.build()
}

func factorial(n int64) intcode.Word {
	res := big.NewInt(1)
	for i := int64(2); i <= n; i++ {
		res.Mul(res, big.NewInt(i))
	}
	return intcode.WordFromBig(res)
}
