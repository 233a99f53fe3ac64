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

//go:build unix

package engine

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// allocRegion maps an anonymous, zero-filled region large enough to hold
// capacity term cells and returns it as a []uint64. Unlike the teacher's
// fixed 4GiB VM region (vm/malloc.go), the arena is sized exactly to the
// caller's requested capacity: an HVM run's node count is bounded up front
// by the driver, not discovered incrementally like VM scratch buffers are.
func allocRegion(capacity uint32) []uint64 {
	if capacity == 0 {
		return nil
	}
	size := uintptr(capacity) * 8
	buf, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		panic(fmt.Errorf("engine: mmap %d bytes for arena: %w", size, err))
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&buf[0])), capacity)
}
