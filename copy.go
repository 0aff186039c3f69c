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

import "golang.org/x/exp/slices"

// Copy reproduces its structure verbatim, including indefinite/
// definite flags and chunking, returning a new item graph with
// refcount 1 that shares no storage with it.
func Copy(it *Item) *Item {
	return copyItem(it, false)
}

// CopyDefinite reproduces its logical value, collapsing chunked
// strings to contiguous buffers and indefinite arrays/maps to
// definite containers of their observed size. Integer, float, and
// tag semantics are preserved exactly.
func CopyDefinite(it *Item) *Item {
	return copyItem(it, true)
}

func copyItem(it *Item, definite bool) *Item {
	switch d := it.data.(type) {
	case *uintData:
		return NewUnsignedInt(d.width, d.value)

	case *negintData:
		return NewNegativeInt(d.width, d.magnitude)

	case *stringData:
		return copyString(d, definite)

	case *arrayData:
		return copyArray(d, definite)

	case *mapData:
		return copyMap(d, definite)

	case *tagData:
		tag := NewTag(d.tag)
		if d.child != nil {
			TagSetChild(tag, copyItem(d.child, definite))
		}
		return tag

	case *floatData:
		if d.kind == FloatCtrl {
			return NewSimple(d.ctrl)
		}
		return NewFloat(d.kind, d.value)

	default:
		panic("cbor: copy of unrecognized item kind")
	}
}

func copyString(d *stringData, definite bool) *Item {
	if d.definite {
		buf := slices.Clone(d.bytes)
		return newStringFromOwnedBytesPublic(d.text, buf)
	}
	if !definite {
		var out *Item
		if d.text {
			out = NewIndefiniteTextString()
		} else {
			out = NewIndefiniteByteString()
		}
		for _, chunk := range d.chunks {
			c := copyItem(chunk, false)
			if d.text {
				StringAddChunk(out, c)
			} else {
				ByteStringAddChunk(out, c)
			}
		}
		if d.closed {
			markClosed(out)
		}
		return out
	}
	// CopyDefinite: flatten all chunks into one contiguous buffer.
	total := 0
	for _, chunk := range d.chunks {
		cd, _ := chunk.strd()
		total += len(cd.bytes)
	}
	buf := make([]byte, 0, total)
	for _, chunk := range d.chunks {
		cd, _ := chunk.strd()
		buf = append(buf, cd.bytes...)
	}
	return newStringFromOwnedBytesPublic(d.text, buf)
}

func newStringFromOwnedBytesPublic(text bool, buf []byte) *Item {
	if text {
		return NewTextStringFromOwnedBytes(buf)
	}
	return NewByteStringFromOwnedBytes(buf)
}

func copyArray(d *arrayData, definite bool) *Item {
	useDefinite := d.definite || definite
	var out *Item
	if useDefinite {
		out = NewDefiniteArray(len(d.items))
	} else {
		out = NewIndefiniteArray()
	}
	for _, child := range d.items {
		ArrayPush(out, copyItem(child, definite))
	}
	if d.closed {
		markClosed(out)
	}
	return out
}

func copyMap(d *mapData, definite bool) *Item {
	useDefinite := d.definite || definite
	var out *Item
	if useDefinite {
		out = NewDefiniteMap(len(d.entries))
	} else {
		out = NewIndefiniteMap()
	}
	for _, e := range d.entries {
		MapAdd(out, copyItem(e.Key, definite), copyItem(e.Value, definite))
	}
	if d.closed {
		markClosed(out)
	}
	return out
}
