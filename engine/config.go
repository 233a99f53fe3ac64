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

// Default capacities chosen so that a single Engine can normalize the P24
// fixture (241 injected cells, a node count that grows by a handful of cells
// per DUP_LAM/APP_SUP firing across 2^24-1 interactions) without resizing.
const (
	DefaultArenaCapacity = 1 << 27
	DefaultStackCapacity = 1 << 16
)

// Options configures an Engine at construction time. The zero Options is not
// valid: callers either fill in both capacities or start from Defaults().
type Options struct {
	// ArenaCapacity is the number of Term cells the arena can hold.
	ArenaCapacity uint32 `json:"arenaCapacity"`
	// StackCapacity is the number of spine frames Reduce can descend
	// through before it panics with a traversal stack overflow.
	StackCapacity uint32 `json:"stackCapacity"`
}

// Defaults returns the capacities used when a driver doesn't override them.
func Defaults() Options {
	return Options{
		ArenaCapacity: DefaultArenaCapacity,
		StackCapacity: DefaultStackCapacity,
	}
}

// New builds an Engine from o, the way NewEngine does, but as the one
// construction path a deserialized Options value (driver flags, YAML config)
// is expected to flow through.
func (o Options) New() *Engine {
	return NewEngine(o.ArenaCapacity, o.StackCapacity)
}
