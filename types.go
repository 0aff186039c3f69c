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

// Major is a CBOR major type, the top three bits of an initial byte.
type Major int

const (
	MajorUnsignedInt Major = iota
	MajorNegativeInt
	MajorByteString
	MajorTextString
	MajorArray
	MajorMap
	MajorTag
	MajorFloatOrSimple
)

func (m Major) String() string {
	switch m {
	case MajorUnsignedInt:
		return "UnsignedInt"
	case MajorNegativeInt:
		return "NegativeInt"
	case MajorByteString:
		return "ByteString"
	case MajorTextString:
		return "TextString"
	case MajorArray:
		return "Array"
	case MajorMap:
		return "Map"
	case MajorTag:
		return "Tag"
	case MajorFloatOrSimple:
		return "FloatOrSimple"
	default:
		return "Major(?)"
	}
}

// Width is the bit width of an integer argument, chosen by the
// narrowest additional-information class that can hold it.
type Width int

const (
	Width8 Width = iota
	Width16
	Width32
	Width64
)

func (w Width) String() string {
	switch w {
	case Width8:
		return "8"
	case Width16:
		return "16"
	case Width32:
		return "32"
	case Width64:
		return "64"
	default:
		return "?"
	}
}

// Bytes returns the number of bytes occupied by an argument of width w.
func (w Width) Bytes() int {
	switch w {
	case Width8:
		return 1
	case Width16:
		return 2
	case Width32:
		return 4
	default:
		return 8
	}
}

// FloatKind distinguishes major-type-7 sub-kinds: a control/simple
// value with no payload, or a float of a given width.
type FloatKind int

const (
	// FloatCtrl marks a simple value (booleans, null, undefined, and
	// opaque simple-value codes); the payload is a u8 code, not a float.
	FloatCtrl FloatKind = iota
	FloatHalf
	FloatSingle
	FloatDouble
)

func (k FloatKind) String() string {
	switch k {
	case FloatCtrl:
		return "Ctrl"
	case FloatHalf:
		return "Half"
	case FloatSingle:
		return "Single"
	case FloatDouble:
		return "Double"
	default:
		return "?"
	}
}

// Status is the outcome of one DecodeOne call.
type Status int

const (
	// Finished indicates one complete header (plus any immediate
	// payload) was read and exactly one callback was invoked.
	Finished Status = iota
	// NeedMoreData indicates the buffer was truncated mid-item; no
	// callback was invoked and no state was mutated.
	NeedMoreData
	// Malformed indicates a reserved encoding or other decoder-level
	// protocol violation; no callback was invoked.
	Malformed
)

func (s Status) String() string {
	switch s {
	case Finished:
		return "Finished"
	case NeedMoreData:
		return "NeedMoreData"
	case Malformed:
		return "Malformed"
	default:
		return "Status(?)"
	}
}
