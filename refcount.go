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

// Incref increments its reference count and returns it, for chaining
// at call sites that hand out a second owning reference to an
// existing item.
func Incref(it *Item) *Item {
	it.refcount++
	return it
}

// Decref decrements (*it)'s reference count. If it reaches zero, all
// children are recursively decref'd and the item is released; in
// either case *it is set to nil so the caller cannot accidentally
// reuse a handle whose ownership it has relinquished.
//
// Decref is infallible and must never be called twice for the same
// owning reference; doing so is undefined, per the ordinary C
// double-free rule this discipline mirrors.
func Decref(it **Item) {
	item := *it
	*it = nil
	if item == nil {
		return
	}
	item.refcount--
	if item.refcount <= 0 {
		release(item)
	}
}

// release recursively decrefs item's children and lets item itself
// become garbage once unreferenced; Go's collector performs the
// actual deallocation, so there is no explicit free step.
func release(item *Item) {
	switch d := item.data.(type) {
	case *stringData:
		for _, c := range d.chunks {
			Decref(&c)
		}
	case *arrayData:
		for _, c := range d.items {
			Decref(&c)
		}
	case *mapData:
		for _, e := range d.entries {
			k, v := e.Key, e.Value
			Decref(&k)
			Decref(&v)
		}
	case *tagData:
		if d.child != nil {
			Decref(&d.child)
		}
	}
}
