// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package intcode

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Word is the value of a single Intcode memory cell. It is an arbitrary
// precision signed integer. Values fitting into an int64 are kept inline,
// larger values are held by a big.Int which is never modified after creation.
// Words are thus value types and can be copied and shared freely.
type Word struct {
	small int64
	large *big.Int // < nil if the value fits into small
}

// NewWord creates a Word holding the given value.
func NewWord(value int64) Word {
	return Word{small: value}
}

// WordFromBig creates a Word holding the value of the given big.Int. The
// argument is copied and may be modified by the caller afterwards.
func WordFromBig(value *big.Int) Word {
	if value.IsInt64() {
		return Word{small: value.Int64()}
	}
	return Word{large: new(big.Int).Set(value)}
}

// ParseWord parses a signed decimal integer of arbitrary size.
func ParseWord(text string) (Word, error) {
	text = strings.TrimSpace(text)
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Word{small: v}, nil
	}
	value, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return Word{}, fmt.Errorf("%w: not an integer: %q", ErrInvalidProgram, text)
	}
	return WordFromBig(value), nil
}

// Int64 returns the value of w as an int64. The second result is false if the
// value does not fit into 64 bits.
func (w Word) Int64() (int64, bool) {
	if w.large != nil {
		return 0, false
	}
	return w.small, true
}

// Big returns a fresh big.Int holding the value of w.
func (w Word) Big() *big.Int {
	if w.large != nil {
		return new(big.Int).Set(w.large)
	}
	return big.NewInt(w.small)
}

func (w Word) IsZero() bool {
	return w.large == nil && w.small == 0
}

// Sign returns -1, 0, or +1 depending on the sign of w.
func (w Word) Sign() int {
	if w.large != nil {
		return w.large.Sign()
	}
	switch {
	case w.small < 0:
		return -1
	case w.small > 0:
		return 1
	}
	return 0
}

// Cmp compares w and o and returns -1, 0, or +1.
func (w Word) Cmp(o Word) int {
	if w.large == nil && o.large == nil {
		switch {
		case w.small < o.small:
			return -1
		case w.small > o.small:
			return 1
		}
		return 0
	}
	return w.Big().Cmp(o.Big())
}

// Add returns w + o.
func (w Word) Add(o Word) Word {
	if w.large == nil && o.large == nil {
		sum := w.small + o.small
		// Overflow happened iff both operands have the same sign and the
		// sign of the result differs.
		if (w.small >= 0) == (o.small >= 0) && (sum >= 0) != (w.small >= 0) {
			return WordFromBig(new(big.Int).Add(big.NewInt(w.small), big.NewInt(o.small)))
		}
		return Word{small: sum}
	}
	return WordFromBig(new(big.Int).Add(w.Big(), o.Big()))
}

// Mul returns w * o.
func (w Word) Mul(o Word) Word {
	if w.large == nil && o.large == nil {
		a, b := w.small, o.small
		if a == 0 || b == 0 {
			return Word{}
		}
		product := a * b
		overflow := (a == -1 && b == math.MinInt64) ||
			(b == -1 && a == math.MinInt64) ||
			product/b != a
		if !overflow {
			return Word{small: product}
		}
	}
	return WordFromBig(new(big.Int).Mul(w.Big(), o.Big()))
}

func (w Word) String() string {
	if w.large != nil {
		return w.large.String()
	}
	return strconv.FormatInt(w.small, 10)
}

// Words converts the given integers into a slice of Words.
func Words(values ...int64) []Word {
	res := make([]Word, len(values))
	for i, v := range values {
		res[i] = NewWord(v)
	}
	return res
}
