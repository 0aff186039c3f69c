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

// ArrayPush appends child to arr, adopting the caller's reference to
// child (the caller must not separately decref it). arr must be an
// Array not yet complete: a definite array with fewer than its
// declared size, or an open indefinite array.
//
// ArrayPush panics if arr is not an Array or is already complete;
// the builder only calls it while the array's frame still expects
// elements.
func ArrayPush(arr, child *Item) {
	d, ok := arr.arrd()
	if !ok {
		panic("cbor: ArrayPush on non-Array item")
	}
	if (d.definite && len(d.items) >= d.size) || (!d.definite && d.closed) {
		panic("cbor: ArrayPush on a complete Array")
	}
	d.items = append(d.items, child)
}

// MapAdd appends one key/value pair to m, adopting both references.
// m must be a Map not yet complete.
func MapAdd(m *Item, key, value *Item) {
	d, ok := m.mapd()
	if !ok {
		panic("cbor: MapAdd on non-Map item")
	}
	d.entries = append(d.entries, MapEntry{Key: key, Value: value})
}

// TagSetChild attaches child to tag, adopting the caller's reference.
// tag must not already have a child.
func TagSetChild(tag, child *Item) {
	d, ok := tag.tagd()
	if !ok {
		panic("cbor: TagSetChild on non-Tag item")
	}
	if d.child != nil {
		panic("cbor: TagSetChild on a Tag that already has a child")
	}
	d.child = child
}

// ByteStringAddChunk appends a definite ByteString chunk to an open
// indefinite ByteString. chunk must itself be a definite ByteString;
// the caller's reference to chunk is adopted.
func ByteStringAddChunk(s, chunk *Item) {
	d, ok := s.strd()
	if !ok || d.text || d.definite {
		panic("cbor: ByteStringAddChunk on non-indefinite-ByteString item")
	}
	d.chunks = append(d.chunks, chunk)
}

// StringAddChunk is the TextString analogue of ByteStringAddChunk.
func StringAddChunk(s, chunk *Item) {
	d, ok := s.strd()
	if !ok || !d.text || d.definite {
		panic("cbor: StringAddChunk on non-indefinite-TextString item")
	}
	d.chunks = append(d.chunks, chunk)
}
