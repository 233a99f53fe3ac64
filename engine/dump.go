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
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Dump writes a "// run <RunID>" header comment followed by one line per
// nonzero cell below the write frontier, in the exact textual form the
// reference source's print_heap/print_term emit:
//
//	set(heap, 0x<loc hex>, new_term(<tag>,0x<label hex>,0x<loc field hex>));
//
// reproduced field-width for field-width so that the cell lines are
// directly re-injectable and usable for the round-trip property test in
// spec.md §8. The header is a comment, not part of that format: it
// identifies which run produced the dump, nothing more.
func (e *Engine) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "// run %s\n", e.RunID); err != nil {
		return err
	}
	end := e.arena.End()
	for loc := uint32(0); loc < end; loc++ {
		term := e.arena.Get(loc)
		if term == VOID {
			continue
		}
		_, err := fmt.Fprintf(bw, "set(heap, 0x%09x, new_term(%s,0x%06x,0x%09x));\n",
			loc, term.Tag(), term.Label(), term.Loc())
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// parseTag is the inverse of Tag.String: it maps a three-letter tag name
// back to its Tag value. It rejects "???", the string String uses for any
// tag value Dump never actually emits.
func parseTag(name string) (Tag, bool) {
	switch name {
	case "SUB":
		return SUB, true
	case "VAR":
		return VAR, true
	case "DP0":
		return DP0, true
	case "DP1":
		return DP1, true
	case "APP":
		return APP, true
	case "ERA":
		return ERA, true
	case "LAM":
		return LAM, true
	case "SUP":
		return SUP, true
	default:
		return 0, false
	}
}

// ParseDump reads the "set(heap, ...)" lines Dump produces and returns the
// cells they describe, ready for Inject: this is Dump's inverse, the
// missing half of the round-trip property in spec.md §8 ("injecting the
// dump of a graph and normalizing yields the same (itr_delta, final_graph)
// as normalizing the original"). The optional "// run <RunID>" header line
// and blank lines are skipped; anything else that doesn't match the exact
// format Dump emits is a parse error.
func ParseDump(r io.Reader) ([]Term, error) {
	sc := bufio.NewScanner(r)
	var cells []Term
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		var loc, label, locField uint32
		var tagName string
		n, err := fmt.Sscanf(line, "set(heap, 0x%x, new_term(%3s,0x%x,0x%x));", &loc, &tagName, &label, &locField)
		if err != nil || n != 4 {
			return nil, fmt.Errorf("engine: malformed dump line %q: %w", line, err)
		}
		tag, ok := parseTag(tagName)
		if !ok {
			return nil, fmt.Errorf("engine: malformed dump line %q: unknown tag %q", line, tagName)
		}
		for uint32(len(cells)) <= loc {
			cells = append(cells, VOID)
		}
		cells[loc] = Make(tag, label, locField)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("engine: reading dump: %w", err)
	}
	return cells, nil
}

// LoadDump parses a dump with ParseDump and injects the resulting cells
// into e, the way an injector normally populates a fresh graph.
func (e *Engine) LoadDump(r io.Reader) error {
	cells, err := ParseDump(r)
	if err != nil {
		return err
	}
	e.Inject(cells)
	return nil
}
