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
	"encoding/binary"

	"github.com/dchest/siphash"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// RuleHistogram counts interactions fired per rule during a run. It is a
// pure diagnostic: it never influences rewrite semantics or the itr count.
type RuleHistogram map[RuleName]uint64

// Histogram returns the current per-rule interaction counts.
func (e *Engine) Histogram() RuleHistogram {
	return e.hist
}

// Sorted returns the histogram's rule names in a deterministic order,
// suitable for stable diagnostic output.
func (h RuleHistogram) Sorted() []RuleName {
	names := maps.Keys(h)
	slices.Sort(names)
	return names
}

// Signature computes a fast, non-cryptographic fingerprint of the engine's
// current (root, itr, end) triple. It is meant for a cheap "did this run
// actually do anything" check in logs, not for graph equality: two runs
// with the same Signature are very likely, not certainly, in the same
// state.
func (e *Engine) Signature() uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(e.arena.Get(0)))
	binary.LittleEndian.PutUint64(buf[8:16], e.arena.Itr())
	binary.LittleEndian.PutUint64(buf[16:24], uint64(e.arena.End()))
	return siphash.Hash(0, uint64(e.RunID.ID()), buf[:])
}

// GraphDigest hashes a canonical traversal of the reachable graph rooted at
// root: a content digest used by round-trip property tests (spec.md §8) to
// compare "normalize(original)" against "normalize(inject(dump(original)))"
// without a cell-by-cell diff of two arenas of possibly different sizes.
//
// The traversal follows every node's cells in tag-defined order and does
// not dereference VAR/DP0/DP1 through their binder (an unbound variable and
// a bound one hash differently only via the bytes of the term they wrote
// back, matching what a cell-by-cell comparison of the final graph would
// observe).
func (e *Engine) GraphDigest(root Term) ([32]byte, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return [32]byte{}, err
	}
	seen := make(map[uint32]bool)
	var walk func(t Term)
	walk = func(t Term) {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(t))
		h.Write(buf[:])
		switch t.Tag() {
		case APP, SUP:
			loc := t.Loc()
			if seen[loc] {
				return
			}
			seen[loc] = true
			walk(e.arena.Get(loc + 0))
			walk(e.arena.Get(loc + 1))
		case LAM:
			loc := t.Loc()
			if seen[loc] {
				return
			}
			seen[loc] = true
			walk(e.arena.Get(loc + 1))
		case DP0, DP1:
			loc := t.Loc()
			if seen[loc] {
				return
			}
			seen[loc] = true
			walk(e.arena.Get(loc + 2))
		}
	}
	walk(root)
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}
