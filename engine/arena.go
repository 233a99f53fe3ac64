// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package engine

import (
	"fmt"
	"sync/atomic"
)

// Arena is a pre-allocated, append-only memory of fixed-width term cells.
// All cell access uses relaxed-ordering atomics: the present reducer is
// single-threaded, but the contract is kept atomic-compatible so a future
// parallel reducer can reuse it without a memory-model change.
type Arena struct {
	mem []uint64 // backing store, capacity fixed at construction

	ini atomic.Uint64 // reserved, unused (see spec §9.3)
	end atomic.Uint64 // write frontier
	itr atomic.Uint64 // interaction counter
}

// NewArena allocates an arena holding up to capacity term cells.
func NewArena(capacity uint32) *Arena {
	return &Arena{mem: allocRegion(capacity)}
}

// Cap returns the arena's fixed cell capacity.
func (a *Arena) Cap() uint32 {
	return uint32(len(a.mem))
}

// Alloc atomically advances the write frontier by n cells and returns the
// index of the first of those cells. The caller must write exactly n
// consecutive cells before any other actor reads them.
func (a *Arena) Alloc(n uint32) uint32 {
	loc := a.end.Add(uint64(n)) - uint64(n)
	if loc+uint64(n) > uint64(len(a.mem)) {
		panic(fmt.Errorf("engine: arena exhausted: alloc(%d) at %d exceeds capacity %d", n, loc, len(a.mem)))
	}
	return uint32(loc)
}

// Get loads the term at loc.
func (a *Arena) Get(loc uint32) Term {
	return Term(atomic.LoadUint64(&a.mem[loc]))
}

// Set stores term at loc.
func (a *Arena) Set(loc uint32, term Term) {
	atomic.StoreUint64(&a.mem[loc], uint64(term))
}

// Swap atomically exchanges the term at loc with term and returns the
// previous occupant.
func (a *Arena) Swap(loc uint32, term Term) Term {
	return Term(atomic.SwapUint64(&a.mem[loc], uint64(term)))
}

// Take consumes the cell at loc, leaving VOID behind, and returns the old
// occupant.
func (a *Arena) Take(loc uint32) Term {
	return a.Swap(loc, VOID)
}

// Ini returns the reserved base-index counter.
func (a *Arena) Ini() uint32 { return uint32(a.ini.Load()) }

// SetIni stores the reserved base-index counter.
func (a *Arena) SetIni(v uint32) { a.ini.Store(uint64(v)) }

// End returns the current write frontier (node count).
func (a *Arena) End() uint32 { return uint32(a.end.Load()) }

// SetEnd stores the write frontier directly; used by Inject to position the
// frontier one past the highest index the injector wrote.
func (a *Arena) SetEnd(v uint32) { a.end.Store(uint64(v)) }

// Itr returns the interaction counter.
func (a *Arena) Itr() uint64 { return a.itr.Load() }

// SetItr stores the interaction counter; used by Inject to reset it to zero.
func (a *Arena) SetItr(v uint64) { a.itr.Store(v) }

// incItr increments the interaction counter by one, as every interaction
// rule must do exactly once per firing, and returns the new value.
func (a *Arena) incItr() uint64 {
	return a.itr.Add(1)
}
