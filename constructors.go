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

// NewUnsignedInt constructs a width-w UnsignedInt item with the given
// value, refcount 1.
func NewUnsignedInt(w Width, value uint64) *Item {
	it, _ := newUnsignedInt(defaultAllocator, w, value)
	return it
}

func newUnsignedInt(a allocator, w Width, value uint64) (*Item, bool) {
	return a.newItem(&uintData{width: w, value: value})
}

// NewNegativeInt constructs a width-w NegativeInt item with raw
// magnitude m (logical value -1-m), refcount 1.
func NewNegativeInt(w Width, m uint64) *Item {
	it, _ := newNegativeInt(defaultAllocator, w, m)
	return it
}

func newNegativeInt(a allocator, w Width, m uint64) (*Item, bool) {
	return a.newItem(&negintData{width: w, magnitude: m})
}

// NewByteStringFromOwnedBytes constructs a definite ByteString item
// that takes ownership of buf (the caller must not retain or mutate
// it afterwards). This is the single public path for installing a
// definite string's backing buffer, used by both ordinary callers and
// CopyDefinite.
func NewByteStringFromOwnedBytes(buf []byte) *Item {
	it, _ := newStringFromOwnedBytes(defaultAllocator, false, buf)
	return it
}

// NewTextStringFromOwnedBytes is like NewByteStringFromOwnedBytes but
// constructs a definite TextString. buf is taken as-is; UTF-8
// validity is not checked.
func NewTextStringFromOwnedBytes(buf []byte) *Item {
	it, _ := newStringFromOwnedBytes(defaultAllocator, true, buf)
	return it
}

func newStringFromOwnedBytes(a allocator, text bool, buf []byte) (*Item, bool) {
	return a.newItem(&stringData{text: text, definite: true, bytes: buf})
}

// NewIndefiniteByteString constructs an empty, open indefinite-length
// ByteString item; chunks are appended with ByteStringAddChunk and the
// string is closed by the builder on receiving a break.
func NewIndefiniteByteString() *Item {
	it, _ := newIndefiniteString(defaultAllocator, false)
	return it
}

// NewIndefiniteTextString is the TextString analogue of
// NewIndefiniteByteString.
func NewIndefiniteTextString() *Item {
	it, _ := newIndefiniteString(defaultAllocator, true)
	return it
}

func newIndefiniteString(a allocator, text bool) (*Item, bool) {
	return a.newItem(&stringData{text: text, definite: false})
}

// NewDefiniteArray constructs an empty definite Array declaring size
// n; it is not complete (see builder) until n children are appended.
func NewDefiniteArray(n int) *Item {
	it, _ := newArray(defaultAllocator, true, n)
	return it
}

// NewIndefiniteArray constructs an empty, open indefinite Array.
func NewIndefiniteArray() *Item {
	it, _ := newArray(defaultAllocator, false, 0)
	return it
}

func newArray(a allocator, definite bool, n int) (*Item, bool) {
	return a.newItem(&arrayData{definite: definite, size: n})
}

// NewDefiniteMap constructs an empty definite Map declaring n pairs.
func NewDefiniteMap(n int) *Item {
	it, _ := newMap(defaultAllocator, true, n)
	return it
}

// NewIndefiniteMap constructs an empty, open indefinite Map.
func NewIndefiniteMap() *Item {
	it, _ := newMap(defaultAllocator, false, 0)
	return it
}

func newMap(a allocator, definite bool, n int) (*Item, bool) {
	return a.newItem(&mapData{definite: definite, pairs: n})
}

// NewTag constructs a Tag item with the given tag value and no child
// yet attached; see TagSetChild.
func NewTag(tag uint64) *Item {
	it, _ := newTag(defaultAllocator, tag)
	return it
}

func newTag(a allocator, tag uint64) (*Item, bool) {
	return a.newItem(&tagData{tag: tag})
}

// NewBool constructs the logical boolean simple value (simple 20/21).
func NewBool(v bool) *Item {
	code := uint8(20)
	if v {
		code = 21
	}
	return NewSimple(code)
}

// NewNull constructs the logical null simple value (simple 22).
func NewNull() *Item {
	return NewSimple(22)
}

// NewUndefined constructs the logical undefined simple value (simple 23).
func NewUndefined() *Item {
	return NewSimple(23)
}

// NewSimple constructs an opaque major-7 simple-value item with the
// given u8 code. Codes 20, 21, 22, 23 are the logical false, true,
// null, and undefined values respectively; all other codes are
// caller-defined.
func NewSimple(code uint8) *Item {
	it, _ := newFloat(defaultAllocator, FloatCtrl, 0, code)
	return it
}

// NewFloat constructs a major-7 float item of the given width (Half,
// Single, or Double).
func NewFloat(kind FloatKind, value float64) *Item {
	it, _ := newFloat(defaultAllocator, kind, value, 0)
	return it
}

func newFloat(a allocator, kind FloatKind, value float64, ctrl uint8) (*Item, bool) {
	return a.newItem(&floatData{kind: kind, value: value, ctrl: ctrl})
}
