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

	lru "github.com/hashicorp/golang-lru/v2"
)

// ProgramCache is an LRU governed cache of parsed programs indexed by the
// hash of their source text. Many puzzles instantiate dozens of machines
// from the same text; the cache makes sure it is parsed only once. The
// cache is safe for concurrent use.
type ProgramCache struct {
	cache *lru.Cache[Hash, Program]
}

// NewProgramCache creates a cache retaining up to capacity programs.
func NewProgramCache(capacity int) (*ProgramCache, error) {
	cache, err := lru.New[Hash, Program](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create program cache: %w", err)
	}
	return &ProgramCache{cache: cache}, nil
}

// Parse returns the program described by the given text. The result is a
// private copy the caller may modify.
func (c *ProgramCache) Parse(text string) (Program, error) {
	key := hashText(text)
	if res, found := c.cache.Get(key); found {
		return res.Clone(), nil
	}
	res, err := ParseProgram(text)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, res)
	return res.Clone(), nil
}

// Len returns the number of cached programs.
func (c *ProgramCache) Len() int {
	return c.cache.Len()
}
