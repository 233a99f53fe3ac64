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

import "testing"

func TestAppEra(t *testing.T) {
	a := NewArena(16)
	appLoc := a.Alloc(2)
	era := Make(ERA, 0, 0)
	a.Set(appLoc+1, Make(ERA, 0, 0)) // argument, orphaned
	app := Make(APP, 0, appLoc)

	result := a.appEra(app, era)
	if result != era {
		t.Fatalf("appEra = %v, want %v", result, era)
	}
	if got := a.Itr(); got != 1 {
		t.Fatalf("Itr() = %d, want 1", got)
	}
}

func TestAppLam(t *testing.T) {
	a := NewArena(16)
	appLoc := a.Alloc(2)
	lamLoc := a.Alloc(2)
	arg := Make(VAR, 0, 99)
	body := Make(ERA, 0, 0)
	a.Set(appLoc+1, arg)
	a.Set(lamLoc+0, Make(SUB, 0, 0))
	a.Set(lamLoc+1, body)

	result := a.appLam(Make(APP, 0, appLoc), Make(LAM, 0, lamLoc))
	if result != body {
		t.Fatalf("appLam result = %v, want body %v", result, body)
	}
	if got := a.Get(lamLoc + 0); got != arg {
		t.Fatalf("binder cell = %v, want bound argument %v", got, arg)
	}
	if got := a.Itr(); got != 1 {
		t.Fatalf("Itr() = %d, want 1", got)
	}
}

func TestAppSup(t *testing.T) {
	a := NewArena(64)
	supLoc := a.Alloc(2)
	p := Make(VAR, 0, 10)
	q := Make(VAR, 0, 11)
	a.Set(supLoc+0, p)
	a.Set(supLoc+1, q)

	appLoc := a.Alloc(2)
	arg := Make(VAR, 0, 20)
	a.Set(appLoc+1, arg)

	result := a.appSup(Make(APP, 0, appLoc), Make(SUP, 0, supLoc))
	if result.Tag() != SUP {
		t.Fatalf("appSup result tag = %v, want SUP", result.Tag())
	}
	s := result.Loc()
	ap0 := a.Get(s + 0)
	ap1 := a.Get(s + 1)
	if ap0.Tag() != APP || ap1.Tag() != APP {
		t.Fatalf("new superposition children = (%v,%v), want (APP,APP)", ap0.Tag(), ap1.Tag())
	}
	a0 := ap0.Loc()
	a1 := ap1.Loc()
	if got := a.Get(a0 + 0); got != p {
		t.Fatalf("left application's function = %v, want %v", got, p)
	}
	if got := a.Get(a1 + 0); got != q {
		t.Fatalf("right application's function = %v, want %v", got, q)
	}
	dp0 := a.Get(a0 + 1)
	dp1 := a.Get(a1 + 1)
	if dp0.Tag() != DP0 || dp1.Tag() != DP1 || dp0.Loc() != dp1.Loc() {
		t.Fatalf("application arguments = (%v,%v), want (DP0,DP1) over the same duplicator", dp0, dp1)
	}
	dup := dp0.Loc()
	if got := a.Get(dup + 2); got != arg {
		t.Fatalf("duplicator body = %v, want original argument %v", got, arg)
	}
	if got := a.Get(dup + 0); got.Tag() != SUB {
		t.Fatalf("duplicator left output = %v, want SUB", got)
	}
	if got := a.Itr(); got != 1 {
		t.Fatalf("Itr() = %d, want 1", got)
	}
}

func TestDupEra(t *testing.T) {
	a := NewArena(16)
	dupLoc := a.Alloc(3)
	a.Set(dupLoc+2, Make(VAR, 0, 5))
	era := Make(ERA, 0, 0)

	result := a.dupEra(Make(DP0, 0, dupLoc), era)
	if result != era {
		t.Fatalf("dupEra(DP0) = %v, want %v", result, era)
	}
	if got := a.Get(dupLoc + 0); got != era {
		t.Fatalf("left output = %v, want %v", got, era)
	}
	if got := a.Get(dupLoc + 1); got != era {
		t.Fatalf("right output = %v, want %v", got, era)
	}

	result = a.dupEra(Make(DP1, 0, dupLoc), era)
	if result != era {
		t.Fatalf("dupEra(DP1) = %v, want %v", result, era)
	}
	if got := a.Itr(); got != 2 {
		t.Fatalf("Itr() = %d, want 2", got)
	}
}

func TestDupLam(t *testing.T) {
	a := NewArena(64)
	dupLoc := a.Alloc(3)
	lamLoc := a.Alloc(2)
	body := Make(ERA, 0, 0)
	a.Set(lamLoc+0, Make(SUB, 0, 0))
	a.Set(lamLoc+1, body)

	result := a.dupLam(Make(DP0, 0, dupLoc), Make(LAM, 0, lamLoc))

	l0term := a.Get(dupLoc + 0)
	l1term := a.Get(dupLoc + 1)
	if l0term.Tag() != LAM || l1term.Tag() != LAM {
		t.Fatalf("duplicator outputs = (%v,%v), want (LAM,LAM)", l0term, l1term)
	}
	if result != l0term {
		t.Fatalf("dupLam(DP0) = %v, want left output %v", result, l0term)
	}

	supAtLam := a.Get(lamLoc + 0)
	if supAtLam.Tag() != SUP {
		t.Fatalf("original binder cell = %v, want SUP", supAtLam)
	}
	vx0 := a.Get(supAtLam.Loc() + 0)
	vx1 := a.Get(supAtLam.Loc() + 1)
	if vx0.Tag() != VAR || vx0.Loc() != l0term.Loc() {
		t.Fatalf("sup left = %v, want VAR pointing at %d", vx0, l0term.Loc())
	}
	if vx1.Tag() != VAR || vx1.Loc() != l1term.Loc() {
		t.Fatalf("sup right = %v, want VAR pointing at %d", vx1, l1term.Loc())
	}

	b0 := a.Get(l0term.Loc() + 1)
	b1 := a.Get(l1term.Loc() + 1)
	if b0.Tag() != DP0 || b1.Tag() != DP1 || b0.Loc() != b1.Loc() {
		t.Fatalf("fresh lambda bodies = (%v,%v), want DP0/DP1 of the same duplicator", b0, b1)
	}
	if got := a.Get(b0.Loc() + 2); got != body {
		t.Fatalf("fresh duplicator body = %v, want original body %v", got, body)
	}
	if got := a.Itr(); got != 1 {
		t.Fatalf("Itr() = %d, want 1", got)
	}
}

func TestDupSup(t *testing.T) {
	a := NewArena(16)
	supLoc := a.Alloc(2)
	p := Make(ERA, 0, 0)
	q := Make(VAR, 0, 7)
	a.Set(supLoc+0, p)
	a.Set(supLoc+1, q)
	dupLoc := a.Alloc(3)

	result := a.dupSup(Make(DP0, 0, dupLoc), Make(SUP, 0, supLoc))
	if result != p {
		t.Fatalf("dupSup(DP0) = %v, want %v", result, p)
	}
	if got := a.Get(dupLoc + 0); got != p {
		t.Fatalf("left output = %v, want %v", got, p)
	}
	if got := a.Get(dupLoc + 1); got != q {
		t.Fatalf("right output = %v, want %v", got, q)
	}

	dupLoc2 := a.Alloc(3)
	result = a.dupSup(Make(DP1, 0, dupLoc2), Make(SUP, 0, supLoc))
	if result != q {
		t.Fatalf("dupSup(DP1) = %v, want %v", result, q)
	}
	if got := a.Itr(); got != 2 {
		t.Fatalf("Itr() = %d, want 2", got)
	}
}
