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

package cbor

// allocator is the seam through which item construction happens. The
// production path always uses goAllocator, which never fails -- Go's
// garbage collector removes any reason to model malloc/realloc/free
// as process-wide state. Tests substitute a failing allocator to
// exercise the MemError path without reintroducing manual memory
// management.
type allocator interface {
	// newItem constructs an item wrapping data, or reports ok=false on
	// simulated allocation failure (the production allocator always
	// succeeds).
	newItem(data itemData) (item *Item, ok bool)
}

type goAllocator struct{}

func (goAllocator) newItem(data itemData) (*Item, bool) {
	return &Item{refcount: 1, data: data}, true
}

var defaultAllocator allocator = goAllocator{}
