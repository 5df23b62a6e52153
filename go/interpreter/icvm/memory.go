// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package icvm

import (
	"github.com/Fantom-foundation/Intcode/go/intcode"
	"golang.org/x/exp/slices"
)

// maxAddress is the largest address of a memory cell. Larger stores could
// not be allocated by the runtime.
const maxAddress = 1<<43 - 1

// Memory is the growable memory of an Intcode machine. Every address is
// readable and writable; the store is extended with zero cells whenever an
// address beyond its current extent is accessed.
type Memory struct {
	store []intcode.Word
}

// NewMemory creates a memory initialized with a copy of the given program.
func NewMemory(program intcode.Program) *Memory {
	return &Memory{store: slices.Clone([]intcode.Word(program))}
}

// Get reads the cell at the given address.
func (m *Memory) Get(address int) (intcode.Word, error) {
	if !isValidAddress(address) {
		return intcode.Word{}, intcode.ErrAddressOutOfRange
	}
	m.expand(address)
	return m.store[address], nil
}

// Set writes the cell at the given address.
func (m *Memory) Set(address int, value intcode.Word) error {
	if !isValidAddress(address) {
		return intcode.ErrAddressOutOfRange
	}
	m.expand(address)
	m.store[address] = value
	return nil
}

// Len returns the current extent of the memory.
func (m *Memory) Len() int {
	return len(m.store)
}

// Snapshot returns a copy of the current memory content.
func (m *Memory) Snapshot() intcode.Program {
	return slices.Clone(intcode.Program(m.store))
}

// expand makes sure the given address is within the store, doubling its
// capacity if needed. Cells between the old and new extent are zero.
func (m *Memory) expand(address int) {
	if address < len(m.store) {
		return
	}
	needed := address + 1
	if needed > cap(m.store) {
		capacity := 2 * cap(m.store)
		if capacity < needed {
			capacity = needed
		}
		if int64(capacity) > maxAddress+1 {
			capacity = needed
		}
		store := make([]intcode.Word, needed, capacity)
		copy(store, m.store)
		m.store = store
		return
	}
	// Cells beyond the length are never written before being exposed, so
	// they are still zero.
	m.store = m.store[:needed]
}

func isValidAddress(address int) bool {
	return address >= 0 && int64(address) <= maxAddress
}

// toAddress converts a word into a memory address. Negative values and
// values beyond maxAddress are rejected.
func toAddress(word intcode.Word) (int, error) {
	value, ok := word.Int64()
	if !ok || value < 0 || value > maxAddress || int64(int(value)) != value {
		return 0, intcode.ErrAddressOutOfRange
	}
	return int(value), nil
}
