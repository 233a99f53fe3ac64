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

// Normal performs a full normalization of t: weak-head reduce, then
// recursively normalize under every position a WHNF exposes, writing each
// normalized child back in place. Terminates whenever t has a normal form;
// non-terminating programs loop forever (the caller must impose an
// external bound, see spec.md §7).
func (e *Engine) Normal(t Term) Term {
	wnf := e.Reduce(t)
	loc := wnf.Loc()
	switch wnf.Tag() {
	case APP:
		fun := e.Normal(e.arena.Get(loc + 0))
		arg := e.Normal(e.arena.Get(loc + 1))
		e.arena.Set(loc+0, fun)
		e.arena.Set(loc+1, arg)
	case LAM:
		bod := e.Normal(e.arena.Get(loc + 1))
		e.arena.Set(loc+1, bod)
	case SUP:
		tm0 := e.Normal(e.arena.Get(loc + 0))
		tm1 := e.Normal(e.arena.Get(loc + 1))
		e.arena.Set(loc+0, tm0)
		e.arena.Set(loc+1, tm1)
	case DP0, DP1:
		val := e.Normal(e.arena.Get(loc + 2))
		e.arena.Set(loc+2, val)
	}
	return wnf
}
