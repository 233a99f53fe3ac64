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

import "fmt"

// RuleName identifies which of the six interaction rules fired.
type RuleName string

const (
	ruleAppEra RuleName = "APP_ERA"
	ruleAppLam RuleName = "APP_LAM"
	ruleAppSup RuleName = "APP_SUP"
	ruleDupEra RuleName = "DUP_ERA"
	ruleDupLam RuleName = "DUP_LAM"
	ruleDupSup RuleName = "DUP_SUP"
)

// interact fires the rule matching (host, next), recording it in the
// histogram, and reports whether a rule fired. If none did, (host, next) is
// not a redex: next is a WHNF and host is the unconsumed ancestor.
func (e *Engine) interact(host, next Term) (Term, bool) {
	switch host.Tag() {
	case APP:
		switch next.Tag() {
		case ERA:
			e.hist[ruleAppEra]++
			return e.arena.appEra(host, next), true
		case LAM:
			e.hist[ruleAppLam]++
			return e.arena.appLam(host, next), true
		case SUP:
			e.hist[ruleAppSup]++
			return e.arena.appSup(host, next), true
		}
	case DP0, DP1:
		switch next.Tag() {
		case ERA:
			e.hist[ruleDupEra]++
			return e.arena.dupEra(host, next), true
		case LAM:
			e.hist[ruleDupLam]++
			return e.arena.dupLam(host, next), true
		case SUP:
			e.hist[ruleDupSup]++
			return e.arena.dupSup(host, next), true
		}
	}
	return VOID, false
}

// Reduce walks the graph rooted at root along the evaluation spine using an
// explicit traversal stack, firing interaction rules whenever a redex is
// uncovered, until weak-head normal form is reached: an eraser, a lambda, a
// superposition, or an unbound variable.
//
// The write-back on termination updates only the single stack frame popped
// immediately before returning, not every frame descended into. This
// mirrors the supplied reference source bit-for-bit (see spec.md §4.4 and
// §9, Open Question 1): a full walk-back of every frame changes interaction
// counts for some inputs, and the P24 baseline (Itrs = 16777215) is defined
// against the as-specified behavior.
func (e *Engine) Reduce(root Term) Term {
	stack := e.stack
	spos := 0
	next := root
	push := func(t Term) {
		if spos >= len(stack) {
			panic(fmt.Errorf("engine: traversal stack overflow (capacity %d)", len(stack)))
		}
		stack[spos] = t
		spos++
	}

outer:
	for {
		switch next.Tag() {
		case APP:
			push(next)
			next = e.arena.Get(next.Loc() + 0)
			continue outer

		case DP0, DP1:
			sub := e.arena.Get(next.Key())
			if sub.Tag() == SUB {
				push(next)
				next = e.arena.Get(next.Loc() + 2)
				continue outer
			}
			next = sub
			continue outer

		case VAR:
			sub := e.arena.Get(next.Key())
			if sub.Tag() != SUB {
				next = sub
				continue outer
			}
			// unbound variable: WHNF, fall through to write-back below

		default: // ERA, LAM, SUP, SUB
			if spos > 0 {
				spos--
				prev := stack[spos]
				if result, fired := e.interact(prev, next); fired {
					next = result
					continue outer
				}
				// not a redex: prev is discarded here exactly as the
				// reference source discards it, see doc comment above
			}
		}

		if spos == 0 {
			return next
		}
		spos--
		host := stack[spos]
		switch host.Tag() {
		case APP:
			e.arena.Set(host.Loc()+0, next)
		case DP0, DP1:
			e.arena.Set(host.Loc()+2, next)
		}
		return stack[0]
	}
}
