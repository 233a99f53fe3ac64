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

	"github.com/google/uuid"
)

// Engine owns an arena, the traversal stack the reducer walks the spine
// with, and the run-scoped diagnostics built on top of them (RunID, rule
// histogram). One Engine serves one normalize-to-completion run; nothing
// about it is safe to share across concurrent runs.
type Engine struct {
	arena *Arena
	stack []Term

	// RunID identifies this engine instance in logs and dump headers.
	RunID uuid.UUID

	hist RuleHistogram
}

// NewEngine allocates an engine with an arena able to hold arenaCapacity
// term cells and a traversal stack able to hold stackCapacity spine frames
// before Reduce panics with a traversal stack overflow.
func NewEngine(arenaCapacity, stackCapacity uint32) *Engine {
	return &Engine{
		arena: NewArena(arenaCapacity),
		stack: make([]Term, stackCapacity),
		RunID: uuid.New(),
		hist:  make(RuleHistogram, 6),
	}
}

// Inject populates the arena with an initial graph, writing cells[i] to
// arena index i for every i, positions the write frontier one past the
// highest written index, and zeroes the interaction counter. The root of
// evaluation is always cells[0]. This is the engine's only interface to an
// injector: the injector itself (fixture construction, a future
// surface-syntax compiler, …) is an external collaborator, out of the
// core's scope per spec.md §1.
func (e *Engine) Inject(cells []Term) {
	if uint32(len(cells)) > e.arena.Cap() {
		panic(fmt.Errorf("engine: inject %d cells exceeds arena capacity %d", len(cells), e.arena.Cap()))
	}
	highest := 0
	for i, c := range cells {
		e.arena.Set(uint32(i), c)
		if c != VOID {
			highest = i
		}
	}
	e.arena.SetEnd(uint32(highest + 1))
	e.arena.SetIni(0)
	e.arena.SetItr(0)
	for k := range e.hist {
		delete(e.hist, k)
	}
}

// Normalize reduces the graph rooted at arena index 0 to normal form and
// returns the normalized root term, the number of interactions performed,
// and the resulting node count (write frontier).
func (e *Engine) Normalize() (root Term, interactions uint64, nodes uint32) {
	root = e.Normal(e.arena.Get(0))
	return root, e.arena.Itr(), e.arena.End()
}

// Ini returns the reserved, otherwise-unused base-index counter (spec.md
// §9.3).
func (e *Engine) Ini() uint32 { return e.arena.Ini() }

// End returns the current write frontier (node count).
func (e *Engine) End() uint32 { return e.arena.End() }

// Itr returns the interaction counter.
func (e *Engine) Itr() uint64 { return e.arena.Itr() }

// Get loads the term at the given arena index.
func (e *Engine) Get(loc uint32) Term { return e.arena.Get(loc) }
