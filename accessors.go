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

// Width returns the integer width of a UnsignedInt or NegativeInt
// item, or ok=false for any other major type.
func (it *Item) Width() (Width, bool) {
	if d, ok := it.uintd(); ok {
		return d.width, true
	}
	if d, ok := it.negintd(); ok {
		return d.width, true
	}
	return 0, false
}

// Uint returns the value of an UnsignedInt item.
func (it *Item) Uint() (uint64, bool) {
	d, ok := it.uintd()
	if !ok {
		return 0, false
	}
	return d.value, true
}

// NegativeMagnitude returns the raw magnitude m of a NegativeInt item
// (logical value -1-m).
func (it *Item) NegativeMagnitude() (uint64, bool) {
	d, ok := it.negintd()
	if !ok {
		return 0, false
	}
	return d.magnitude, true
}

// NegativeValue returns the logical (signed) value of a NegativeInt
// item when it fits in an int64; ok is false on overflow or if it is
// not a NegativeInt.
func (it *Item) NegativeValue() (v int64, ok bool) {
	d, isNeg := it.negintd()
	if !isNeg {
		return 0, false
	}
	if d.magnitude >= 1<<63 {
		return 0, false
	}
	return -1 - int64(d.magnitude), true
}

// IsDefinite reports whether a ByteString, TextString, Array, or Map
// item has a declared, fixed length. Any other major type returns
// true (they have no indefinite form).
func (it *Item) IsDefinite() bool {
	switch d := it.data.(type) {
	case *stringData:
		return d.definite
	case *arrayData:
		return d.definite
	case *mapData:
		return d.definite
	default:
		return true
	}
}

// Len returns the number of elements currently held by an Array
// (items), Map (pairs), or the byte length of a non-chunked string.
// ok is false for any other major type.
func (it *Item) Len() (int, bool) {
	switch d := it.data.(type) {
	case *arrayData:
		return len(d.items), true
	case *mapData:
		return len(d.entries), true
	case *stringData:
		if d.chunks != nil {
			return 0, false
		}
		return len(d.bytes), true
	default:
		return 0, false
	}
}

// ChunkCount returns the number of chunks of a chunked ByteString or
// TextString; ok is false if it is not a chunked string.
func (it *Item) ChunkCount() (int, bool) {
	d, ok := it.strd()
	if !ok || d.chunks == nil {
		return 0, false
	}
	return len(d.chunks), true
}

// Chunk returns the i'th chunk of a chunked ByteString or TextString.
func (it *Item) Chunk(i int) (*Item, bool) {
	d, ok := it.strd()
	if !ok || d.chunks == nil || i < 0 || i >= len(d.chunks) {
		return nil, false
	}
	return d.chunks[i], true
}

// Bytes returns the backing buffer of a non-chunked ByteString or
// TextString. The returned slice aliases the item's storage and must
// not be mutated by the caller.
func (it *Item) Bytes() ([]byte, bool) {
	d, ok := it.strd()
	if !ok || d.chunks != nil {
		return nil, false
	}
	return d.bytes, true
}

// Items returns the element slice of an Array item. The returned
// slice aliases the item's storage and must not be mutated directly;
// use ArrayPush to append.
func (it *Item) Items() ([]*Item, bool) {
	d, ok := it.arrd()
	if !ok {
		return nil, false
	}
	return d.items, true
}

// Entries returns the key/value pairs of a Map item, in encoded
// order. The returned slice aliases the item's storage.
func (it *Item) Entries() ([]MapEntry, bool) {
	d, ok := it.mapd()
	if !ok {
		return nil, false
	}
	return d.entries, true
}

// TagValue returns the u64 tag number of a Tag item.
func (it *Item) TagValue() (uint64, bool) {
	d, ok := it.tagd()
	if !ok {
		return 0, false
	}
	return d.tag, true
}

// TagChild returns the single child of a Tag item, or ok=false if it
// is not a Tag or the child has not yet been attached.
func (it *Item) TagChild() (*Item, bool) {
	d, ok := it.tagd()
	if !ok || d.child == nil {
		return nil, false
	}
	return d.child, true
}

// Float returns the float payload of a Half/Single/Double
// FloatOrSimple item.
func (it *Item) Float() (float64, bool) {
	d, ok := it.floatd()
	if !ok || d.kind == FloatCtrl {
		return 0, false
	}
	return d.value, true
}

// FloatKind returns the major-7 sub-kind of a FloatOrSimple item.
func (it *Item) FloatKind() (FloatKind, bool) {
	d, ok := it.floatd()
	if !ok {
		return 0, false
	}
	return d.kind, true
}

// SimpleValue returns the raw u8 simple-value code of a Ctrl-kind
// FloatOrSimple item (including the codes for false/true/null/
// undefined).
func (it *Item) SimpleValue() (uint8, bool) {
	d, ok := it.floatd()
	if !ok || d.kind != FloatCtrl {
		return 0, false
	}
	return d.ctrl, true
}

// Boolean returns the logical boolean value of a simple-20/21 item.
func (it *Item) Boolean() (bool, bool) {
	code, ok := it.SimpleValue()
	if !ok || (code != 20 && code != 21) {
		return false, false
	}
	return code == 21, true
}

// IsNull reports whether it is the simple-22 null value.
func (it *Item) IsNull() bool {
	code, ok := it.SimpleValue()
	return ok && code == 22
}

// IsUndefined reports whether it is the simple-23 undefined value.
func (it *Item) IsUndefined() bool {
	code, ok := it.SimpleValue()
	return ok && code == 23
}
