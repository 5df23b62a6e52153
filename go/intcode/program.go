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
	"os"
	"strings"

	"golang.org/x/crypto/sha3"
	"golang.org/x/exp/slices"
)

// Program is the initial memory content of an Intcode machine.
type Program []Word

// Hash is a 32-byte Keccak-256 hash identifying a program.
type Hash [32]byte

// ParseProgram parses a comma separated list of signed decimal integers.
// Whitespace around the list and around individual values is ignored.
func ParseProgram(text string) (Program, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty program", ErrInvalidProgram)
	}
	parts := strings.Split(text, ",")
	res := make(Program, len(parts))
	for i, part := range parts {
		word, err := ParseWord(part)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		res[i] = word
	}
	return res, nil
}

// MustParseProgram is like ParseProgram but panics on invalid input. It is
// intended for programs embedded in code and tests.
func MustParseProgram(text string) Program {
	res, err := ParseProgram(text)
	if err != nil {
		panic(err)
	}
	return res
}

// LoadProgram reads and parses the program stored in the given file.
func LoadProgram(path string) (Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	res, err := ParseProgram(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return res, nil
}

// Clone returns an independent copy of the program.
func (p Program) Clone() Program {
	return slices.Clone(p)
}

// String renders the program in its canonical comma separated form.
func (p Program) String() string {
	var builder strings.Builder
	for i, word := range p {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(word.String())
	}
	return builder.String()
}

// Hash computes the Keccak-256 hash of the program's canonical form.
func (p Program) Hash() Hash {
	return hashText(p.String())
}

func hashText(text string) Hash {
	var res Hash
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(text))
	hasher.Sum(res[:0])
	return res
}

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}
