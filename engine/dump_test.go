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
	"bytes"
	"strings"
	"testing"
)

func TestDumpSkipsVoidAndFormatsFields(t *testing.T) {
	e := NewEngine(16, 16)
	e.arena.Set(0, Make(APP, 0, 1))
	e.arena.Set(1, Make(LAM, 0xABCDEF, 3))
	// cell 2 left VOID: must not appear in the dump.
	e.arena.SetEnd(3)

	var buf bytes.Buffer
	if err := e.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "// run "+e.RunID.String()+"\n") {
		t.Fatalf("Dump output missing RunID header, got:\n%s", out)
	}
	if !strings.Contains(out, "set(heap, 0x000000000, new_term(APP,0x000000,0x000000001));\n") {
		t.Fatalf("Dump output missing expected APP line, got:\n%s", out)
	}
	if !strings.Contains(out, "set(heap, 0x000000001, new_term(LAM,0xabcdef,0x000000003));\n") {
		t.Fatalf("Dump output missing expected LAM line, got:\n%s", out)
	}
	if strings.Contains(out, "0x000000002") {
		t.Fatalf("Dump output must skip the VOID cell at 0x2, got:\n%s", out)
	}
}

func TestDumpEmptyArenaStillEmitsHeader(t *testing.T) {
	e := NewEngine(4, 4)

	var buf bytes.Buffer
	if err := e.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if got := buf.String(); got != "// run "+e.RunID.String()+"\n" {
		t.Fatalf("Dump(empty) = %q, want just the header line", got)
	}
}

func TestParseDumpInvertsDump(t *testing.T) {
	e := NewEngine(16, 16)
	e.arena.Set(0, Make(APP, 0, 1))
	e.arena.Set(1, Make(LAM, 0xABCDEF, 3))
	e.arena.Set(2, Make(ERA, 0, 0))
	e.arena.SetEnd(3)

	var buf bytes.Buffer
	if err := e.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	cells, err := ParseDump(&buf)
	if err != nil {
		t.Fatalf("ParseDump: %v", err)
	}
	if len(cells) != 3 {
		t.Fatalf("ParseDump returned %d cells, want 3", len(cells))
	}
	for loc := uint32(0); loc < 3; loc++ {
		if got, want := cells[loc], e.arena.Get(loc); got != want {
			t.Fatalf("cells[%d] = %v, want %v", loc, got, want)
		}
	}
}

func TestParseDumpSkipsHeaderAndBlankLines(t *testing.T) {
	in := "// run 00000000-0000-0000-0000-000000000000\n" +
		"\n" +
		"set(heap, 0x000000000, new_term(ERA,0x000000,0x000000000));\n"

	cells, err := ParseDump(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseDump: %v", err)
	}
	if len(cells) != 1 || cells[0].Tag() != ERA {
		t.Fatalf("ParseDump = %v, want a single ERA cell", cells)
	}
}

func TestParseDumpRejectsMalformedLine(t *testing.T) {
	_, err := ParseDump(strings.NewReader("not a dump line\n"))
	if err == nil {
		t.Fatal("expected an error for a malformed dump line")
	}
}

func TestParseDumpRejectsUnknownTag(t *testing.T) {
	_, err := ParseDump(strings.NewReader("set(heap, 0x000000000, new_term(XXX,0x000000,0x000000000));\n"))
	if err == nil {
		t.Fatal("expected an error for an unknown tag name")
	}
}

func TestLoadDumpRoundTripMatchesDirectNormalize(t *testing.T) {
	// (lx.x) a -- one APP_LAM interaction, normalizes to normalize(a) = ERA.
	cells := []Term{
		Make(APP, 0, 1),
		Make(LAM, 0, 3),
		Make(ERA, 0, 0),
		Make(SUB, 0, 0),
		Make(VAR, 0, 3),
	}

	direct := NewEngine(16, 16)
	direct.Inject(cells)
	directRoot, directItrs, _ := direct.Normalize()

	dumper := NewEngine(16, 16)
	dumper.Inject(cells)
	var buf bytes.Buffer
	if err := dumper.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	loaded := NewEngine(16, 16)
	if err := loaded.LoadDump(&buf); err != nil {
		t.Fatalf("LoadDump: %v", err)
	}
	loadedRoot, loadedItrs, _ := loaded.Normalize()

	if loadedItrs != directItrs {
		t.Fatalf("round-trip Itrs = %d, want %d (matching direct normalize)", loadedItrs, directItrs)
	}

	directDigest, err := direct.GraphDigest(directRoot)
	if err != nil {
		t.Fatalf("GraphDigest(direct): %v", err)
	}
	loadedDigest, err := loaded.GraphDigest(loadedRoot)
	if err != nil {
		t.Fatalf("GraphDigest(loaded): %v", err)
	}
	if directDigest != loadedDigest {
		t.Fatalf("round-trip final graph digest = %x, want %x (matching direct normalize)", loadedDigest, directDigest)
	}
}
