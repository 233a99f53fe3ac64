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

// The six interaction rules. Each consumes a redex (active, passive) where
// active is APP or a duplicator (DP0/DP1) and passive occupies the slot
// active expects a value in, fires exactly one interaction, and returns the
// term to continue reduction with.

// projection returns 0 for DP0 and 1 for DP1, the output cell a duplicator
// reference reads from.
func projection(dup Term) uint32 {
	if dup.Tag() == DP1 {
		return 1
	}
	return 0
}

// appEra: (* a) => *. The argument is orphaned, not reclaimed.
func (a *Arena) appEra(app, era Term) Term {
	a.incItr()
	return era
}

// appLam: (λx.B) a => B[x := a]. Binds the lambda's argument into its
// binder cell and continues with the body.
func (a *Arena) appLam(app, lam Term) Term {
	a.incItr()
	appLoc := app.Loc()
	lamLoc := lam.Loc()
	arg := a.Get(appLoc + 1)
	bod := a.Get(lamLoc + 1)
	a.Set(lamLoc+0, arg)
	return bod
}

// appSup: ({p q} a) => let {a0 a1} = a in {(p a0) (q a1)}.
func (a *Arena) appSup(app, sup Term) Term {
	a.incItr()
	appLoc := app.Loc()
	supLoc := sup.Loc()
	arg := a.Get(appLoc + 1)
	p := a.Get(supLoc + 0)
	q := a.Get(supLoc + 1)

	dup := a.Alloc(3)
	a0 := a.Alloc(2)
	a1 := a.Alloc(2)
	s := a.Alloc(2)

	a.Set(dup+0, Make(SUB, 0, 0))
	a.Set(dup+1, Make(SUB, 0, 0))
	a.Set(dup+2, arg)
	a.Set(a0+0, p)
	a.Set(a0+1, Make(DP0, 0, dup))
	a.Set(a1+0, q)
	a.Set(a1+1, Make(DP1, 0, dup))
	a.Set(s+0, Make(APP, 0, a0))
	a.Set(s+1, Make(APP, 0, a1))

	return Make(SUP, 0, s)
}

// dupEra: {x y} = *. Both outputs become eraser.
func (a *Arena) dupEra(dup, era Term) Term {
	a.incItr()
	dupLoc := dup.Loc()
	a.Set(dupLoc+0, era)
	a.Set(dupLoc+1, era)
	return a.Get(dupLoc + projection(dup))
}

// dupLam: {r s} = λx.B => let {B0 B1} = B in (r := λx0.B0, s := λx1.B1, x :=
// {x0 x1}). The original lambda's binder is overwritten with the pair so
// references to the old variable x resolve to {x0 x1}.
func (a *Arena) dupLam(dup, lam Term) Term {
	a.incItr()
	dupLoc := dup.Loc()
	lamLoc := lam.Loc()
	bod := a.Get(lamLoc + 1)

	d := a.Alloc(3)
	l0 := a.Alloc(2)
	l1 := a.Alloc(2)
	s := a.Alloc(2)

	a.Set(d+0, Make(SUB, 0, 0))
	a.Set(d+1, Make(SUB, 0, 0))
	a.Set(d+2, bod)
	a.Set(l0+0, Make(SUB, 0, 0))
	a.Set(l0+1, Make(DP0, 0, d))
	a.Set(l1+0, Make(SUB, 0, 0))
	a.Set(l1+1, Make(DP1, 0, d))
	a.Set(s+0, Make(VAR, 0, l0))
	a.Set(s+1, Make(VAR, 0, l1))

	a.Set(dupLoc+0, Make(LAM, 0, l0))
	a.Set(dupLoc+1, Make(LAM, 0, l1))
	a.Set(lamLoc+0, Make(SUP, 0, s))

	return a.Get(dupLoc + projection(dup))
}

// dupSup: {x y} = {a b} => x <- a, y <- b.
func (a *Arena) dupSup(dup, sup Term) Term {
	a.incItr()
	dupLoc := dup.Loc()
	supLoc := sup.Loc()
	tm0 := a.Get(supLoc + 0)
	tm1 := a.Get(supLoc + 1)
	a.Set(dupLoc+0, tm0)
	a.Set(dupLoc+1, tm1)
	return a.Get(dupLoc + projection(dup))
}
