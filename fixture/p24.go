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

// Package fixture carries the P24 hand-encoded test graph for the engine
// package: a 2^24-interaction Church-numeral normalization used by the
// end-to-end test and benchmark in engine/p24_test.go. The small one-redex
// graphs the rule-level property tests use are built inline in the engine
// package's own tests instead of here, to avoid an import cycle (this
// package imports engine).
package fixture

import "github.com/hvmcore/hvm/engine"

// P24 returns a fresh copy of the 241-cell P24 fixture: 2 · 2 applied
// through a twelve-fold tower of squarings of Church numeral 2, applied to
// id and id. Normalizing it performs exactly 16777215 (2^24 - 1)
// interactions and the root normalizes to a LAM. The cell data below is
// reproduced exactly from original_source/HVML.c's inject_P24, not
// re-derived from a Church-numeral builder, so the exact interaction count
// can be asserted bit-for-bit.
func P24() []engine.Term {
	out := make([]engine.Term, len(p24Cells))
	copy(out, p24Cells)
	return out
}

// Code generated from original_source/HVML.c's inject_P24. DO NOT reformat by hand.
var p24Cells = []engine.Term{
	engine.Make(engine.APP, 0, 1), // 0x0
	engine.Make(engine.APP, 0, 3), // 0x1
	engine.Make(engine.LAM, 0, 237), // 0x2
	engine.Make(engine.LAM, 0, 5), // 0x3
	engine.Make(engine.LAM, 0, 223), // 0x4
	engine.Make(engine.SUB, 0, 0), // 0x5
	engine.Make(engine.LAM, 0, 217), // 0x6
	engine.Make(engine.SUB, 0, 0), // 0x7
	engine.Make(engine.SUB, 0, 0), // 0x8
	engine.Make(engine.VAR, 0, 5), // 0x9
	engine.Make(engine.SUB, 0, 0), // 0xa
	engine.Make(engine.SUB, 0, 0), // 0xb
	engine.Make(engine.LAM, 0, 13), // 0xc
	engine.Make(engine.SUB, 0, 0), // 0xd
	engine.Make(engine.APP, 0, 15), // 0xe
	engine.Make(engine.DP0, 0, 7), // 0xf
	engine.Make(engine.APP, 0, 17), // 0x10
	engine.Make(engine.DP1, 0, 7), // 0x11
	engine.Make(engine.VAR, 0, 13), // 0x12
	engine.Make(engine.SUB, 0, 0), // 0x13
	engine.Make(engine.SUB, 0, 0), // 0x14
	engine.Make(engine.LAM, 0, 22), // 0x15
	engine.Make(engine.SUB, 0, 0), // 0x16
	engine.Make(engine.APP, 0, 24), // 0x17
	engine.Make(engine.DP0, 0, 10), // 0x18
	engine.Make(engine.APP, 0, 26), // 0x19
	engine.Make(engine.DP1, 0, 10), // 0x1a
	engine.Make(engine.VAR, 0, 22), // 0x1b
	engine.Make(engine.SUB, 0, 0), // 0x1c
	engine.Make(engine.SUB, 0, 0), // 0x1d
	engine.Make(engine.LAM, 0, 31), // 0x1e
	engine.Make(engine.SUB, 0, 0), // 0x1f
	engine.Make(engine.APP, 0, 33), // 0x20
	engine.Make(engine.DP0, 0, 19), // 0x21
	engine.Make(engine.APP, 0, 35), // 0x22
	engine.Make(engine.DP1, 0, 19), // 0x23
	engine.Make(engine.VAR, 0, 31), // 0x24
	engine.Make(engine.SUB, 0, 0), // 0x25
	engine.Make(engine.SUB, 0, 0), // 0x26
	engine.Make(engine.LAM, 0, 40), // 0x27
	engine.Make(engine.SUB, 0, 0), // 0x28
	engine.Make(engine.APP, 0, 42), // 0x29
	engine.Make(engine.DP0, 0, 28), // 0x2a
	engine.Make(engine.APP, 0, 44), // 0x2b
	engine.Make(engine.DP1, 0, 28), // 0x2c
	engine.Make(engine.VAR, 0, 40), // 0x2d
	engine.Make(engine.SUB, 0, 0), // 0x2e
	engine.Make(engine.SUB, 0, 0), // 0x2f
	engine.Make(engine.LAM, 0, 49), // 0x30
	engine.Make(engine.SUB, 0, 0), // 0x31
	engine.Make(engine.APP, 0, 51), // 0x32
	engine.Make(engine.DP0, 0, 37), // 0x33
	engine.Make(engine.APP, 0, 53), // 0x34
	engine.Make(engine.DP1, 0, 37), // 0x35
	engine.Make(engine.VAR, 0, 49), // 0x36
	engine.Make(engine.SUB, 0, 0), // 0x37
	engine.Make(engine.SUB, 0, 0), // 0x38
	engine.Make(engine.LAM, 0, 58), // 0x39
	engine.Make(engine.SUB, 0, 0), // 0x3a
	engine.Make(engine.APP, 0, 60), // 0x3b
	engine.Make(engine.DP0, 0, 46), // 0x3c
	engine.Make(engine.APP, 0, 62), // 0x3d
	engine.Make(engine.DP1, 0, 46), // 0x3e
	engine.Make(engine.VAR, 0, 58), // 0x3f
	engine.Make(engine.SUB, 0, 0), // 0x40
	engine.Make(engine.SUB, 0, 0), // 0x41
	engine.Make(engine.LAM, 0, 67), // 0x42
	engine.Make(engine.SUB, 0, 0), // 0x43
	engine.Make(engine.APP, 0, 69), // 0x44
	engine.Make(engine.DP0, 0, 55), // 0x45
	engine.Make(engine.APP, 0, 71), // 0x46
	engine.Make(engine.DP1, 0, 55), // 0x47
	engine.Make(engine.VAR, 0, 67), // 0x48
	engine.Make(engine.SUB, 0, 0), // 0x49
	engine.Make(engine.SUB, 0, 0), // 0x4a
	engine.Make(engine.LAM, 0, 76), // 0x4b
	engine.Make(engine.SUB, 0, 0), // 0x4c
	engine.Make(engine.APP, 0, 78), // 0x4d
	engine.Make(engine.DP0, 0, 64), // 0x4e
	engine.Make(engine.APP, 0, 80), // 0x4f
	engine.Make(engine.DP1, 0, 64), // 0x50
	engine.Make(engine.VAR, 0, 76), // 0x51
	engine.Make(engine.SUB, 0, 0), // 0x52
	engine.Make(engine.SUB, 0, 0), // 0x53
	engine.Make(engine.LAM, 0, 85), // 0x54
	engine.Make(engine.SUB, 0, 0), // 0x55
	engine.Make(engine.APP, 0, 87), // 0x56
	engine.Make(engine.DP0, 0, 73), // 0x57
	engine.Make(engine.APP, 0, 89), // 0x58
	engine.Make(engine.DP1, 0, 73), // 0x59
	engine.Make(engine.VAR, 0, 85), // 0x5a
	engine.Make(engine.SUB, 0, 0), // 0x5b
	engine.Make(engine.SUB, 0, 0), // 0x5c
	engine.Make(engine.LAM, 0, 94), // 0x5d
	engine.Make(engine.SUB, 0, 0), // 0x5e
	engine.Make(engine.APP, 0, 96), // 0x5f
	engine.Make(engine.DP0, 0, 82), // 0x60
	engine.Make(engine.APP, 0, 98), // 0x61
	engine.Make(engine.DP1, 0, 82), // 0x62
	engine.Make(engine.VAR, 0, 94), // 0x63
	engine.Make(engine.SUB, 0, 0), // 0x64
	engine.Make(engine.SUB, 0, 0), // 0x65
	engine.Make(engine.LAM, 0, 103), // 0x66
	engine.Make(engine.SUB, 0, 0), // 0x67
	engine.Make(engine.APP, 0, 105), // 0x68
	engine.Make(engine.DP0, 0, 91), // 0x69
	engine.Make(engine.APP, 0, 107), // 0x6a
	engine.Make(engine.DP1, 0, 91), // 0x6b
	engine.Make(engine.VAR, 0, 103), // 0x6c
	engine.Make(engine.SUB, 0, 0), // 0x6d
	engine.Make(engine.SUB, 0, 0), // 0x6e
	engine.Make(engine.LAM, 0, 112), // 0x6f
	engine.Make(engine.SUB, 0, 0), // 0x70
	engine.Make(engine.APP, 0, 114), // 0x71
	engine.Make(engine.DP0, 0, 100), // 0x72
	engine.Make(engine.APP, 0, 116), // 0x73
	engine.Make(engine.DP1, 0, 100), // 0x74
	engine.Make(engine.VAR, 0, 112), // 0x75
	engine.Make(engine.SUB, 0, 0), // 0x76
	engine.Make(engine.SUB, 0, 0), // 0x77
	engine.Make(engine.LAM, 0, 121), // 0x78
	engine.Make(engine.SUB, 0, 0), // 0x79
	engine.Make(engine.APP, 0, 123), // 0x7a
	engine.Make(engine.DP0, 0, 109), // 0x7b
	engine.Make(engine.APP, 0, 125), // 0x7c
	engine.Make(engine.DP1, 0, 109), // 0x7d
	engine.Make(engine.VAR, 0, 121), // 0x7e
	engine.Make(engine.SUB, 0, 0), // 0x7f
	engine.Make(engine.SUB, 0, 0), // 0x80
	engine.Make(engine.LAM, 0, 130), // 0x81
	engine.Make(engine.SUB, 0, 0), // 0x82
	engine.Make(engine.APP, 0, 132), // 0x83
	engine.Make(engine.DP0, 0, 118), // 0x84
	engine.Make(engine.APP, 0, 134), // 0x85
	engine.Make(engine.DP1, 0, 118), // 0x86
	engine.Make(engine.VAR, 0, 130), // 0x87
	engine.Make(engine.SUB, 0, 0), // 0x88
	engine.Make(engine.SUB, 0, 0), // 0x89
	engine.Make(engine.LAM, 0, 139), // 0x8a
	engine.Make(engine.SUB, 0, 0), // 0x8b
	engine.Make(engine.APP, 0, 141), // 0x8c
	engine.Make(engine.DP0, 0, 127), // 0x8d
	engine.Make(engine.APP, 0, 143), // 0x8e
	engine.Make(engine.DP1, 0, 127), // 0x8f
	engine.Make(engine.VAR, 0, 139), // 0x90
	engine.Make(engine.SUB, 0, 0), // 0x91
	engine.Make(engine.SUB, 0, 0), // 0x92
	engine.Make(engine.LAM, 0, 148), // 0x93
	engine.Make(engine.SUB, 0, 0), // 0x94
	engine.Make(engine.APP, 0, 150), // 0x95
	engine.Make(engine.DP0, 0, 136), // 0x96
	engine.Make(engine.APP, 0, 152), // 0x97
	engine.Make(engine.DP1, 0, 136), // 0x98
	engine.Make(engine.VAR, 0, 148), // 0x99
	engine.Make(engine.SUB, 0, 0), // 0x9a
	engine.Make(engine.SUB, 0, 0), // 0x9b
	engine.Make(engine.LAM, 0, 157), // 0x9c
	engine.Make(engine.SUB, 0, 0), // 0x9d
	engine.Make(engine.APP, 0, 159), // 0x9e
	engine.Make(engine.DP0, 0, 145), // 0x9f
	engine.Make(engine.APP, 0, 161), // 0xa0
	engine.Make(engine.DP1, 0, 145), // 0xa1
	engine.Make(engine.VAR, 0, 157), // 0xa2
	engine.Make(engine.SUB, 0, 0), // 0xa3
	engine.Make(engine.SUB, 0, 0), // 0xa4
	engine.Make(engine.LAM, 0, 166), // 0xa5
	engine.Make(engine.SUB, 0, 0), // 0xa6
	engine.Make(engine.APP, 0, 168), // 0xa7
	engine.Make(engine.DP0, 0, 154), // 0xa8
	engine.Make(engine.APP, 0, 170), // 0xa9
	engine.Make(engine.DP1, 0, 154), // 0xaa
	engine.Make(engine.VAR, 0, 166), // 0xab
	engine.Make(engine.SUB, 0, 0), // 0xac
	engine.Make(engine.SUB, 0, 0), // 0xad
	engine.Make(engine.LAM, 0, 175), // 0xae
	engine.Make(engine.SUB, 0, 0), // 0xaf
	engine.Make(engine.APP, 0, 177), // 0xb0
	engine.Make(engine.DP0, 0, 163), // 0xb1
	engine.Make(engine.APP, 0, 179), // 0xb2
	engine.Make(engine.DP1, 0, 163), // 0xb3
	engine.Make(engine.VAR, 0, 175), // 0xb4
	engine.Make(engine.SUB, 0, 0), // 0xb5
	engine.Make(engine.SUB, 0, 0), // 0xb6
	engine.Make(engine.LAM, 0, 184), // 0xb7
	engine.Make(engine.SUB, 0, 0), // 0xb8
	engine.Make(engine.APP, 0, 186), // 0xb9
	engine.Make(engine.DP0, 0, 172), // 0xba
	engine.Make(engine.APP, 0, 188), // 0xbb
	engine.Make(engine.DP1, 0, 172), // 0xbc
	engine.Make(engine.VAR, 0, 184), // 0xbd
	engine.Make(engine.SUB, 0, 0), // 0xbe
	engine.Make(engine.SUB, 0, 0), // 0xbf
	engine.Make(engine.LAM, 0, 193), // 0xc0
	engine.Make(engine.SUB, 0, 0), // 0xc1
	engine.Make(engine.APP, 0, 195), // 0xc2
	engine.Make(engine.DP0, 0, 181), // 0xc3
	engine.Make(engine.APP, 0, 197), // 0xc4
	engine.Make(engine.DP1, 0, 181), // 0xc5
	engine.Make(engine.VAR, 0, 193), // 0xc6
	engine.Make(engine.SUB, 0, 0), // 0xc7
	engine.Make(engine.SUB, 0, 0), // 0xc8
	engine.Make(engine.LAM, 0, 202), // 0xc9
	engine.Make(engine.SUB, 0, 0), // 0xca
	engine.Make(engine.APP, 0, 204), // 0xcb
	engine.Make(engine.DP0, 0, 190), // 0xcc
	engine.Make(engine.APP, 0, 206), // 0xcd
	engine.Make(engine.DP1, 0, 190), // 0xce
	engine.Make(engine.VAR, 0, 202), // 0xcf
	engine.Make(engine.SUB, 0, 0), // 0xd0
	engine.Make(engine.SUB, 0, 0), // 0xd1
	engine.Make(engine.LAM, 0, 211), // 0xd2
	engine.Make(engine.SUB, 0, 0), // 0xd3
	engine.Make(engine.APP, 0, 213), // 0xd4
	engine.Make(engine.DP0, 0, 199), // 0xd5
	engine.Make(engine.APP, 0, 215), // 0xd6
	engine.Make(engine.DP1, 0, 199), // 0xd7
	engine.Make(engine.VAR, 0, 211), // 0xd8
	engine.Make(engine.SUB, 0, 0), // 0xd9
	engine.Make(engine.APP, 0, 219), // 0xda
	engine.Make(engine.DP0, 0, 208), // 0xdb
	engine.Make(engine.APP, 0, 221), // 0xdc
	engine.Make(engine.DP1, 0, 208), // 0xdd
	engine.Make(engine.VAR, 0, 217), // 0xde
	engine.Make(engine.SUB, 0, 0), // 0xdf
	engine.Make(engine.APP, 0, 225), // 0xe0
	engine.Make(engine.APP, 0, 227), // 0xe1
	engine.Make(engine.LAM, 0, 233), // 0xe2
	engine.Make(engine.VAR, 0, 223), // 0xe3
	engine.Make(engine.LAM, 0, 229), // 0xe4
	engine.Make(engine.SUB, 0, 0), // 0xe5
	engine.Make(engine.LAM, 0, 231), // 0xe6
	engine.Make(engine.SUB, 0, 0), // 0xe7
	engine.Make(engine.VAR, 0, 231), // 0xe8
	engine.Make(engine.SUB, 0, 0), // 0xe9
	engine.Make(engine.LAM, 0, 235), // 0xea
	engine.Make(engine.SUB, 0, 0), // 0xeb
	engine.Make(engine.VAR, 0, 233), // 0xec
	engine.Make(engine.SUB, 0, 0), // 0xed
	engine.Make(engine.LAM, 0, 239), // 0xee
	engine.Make(engine.SUB, 0, 0), // 0xef
	engine.Make(engine.VAR, 0, 237), // 0xf0
}