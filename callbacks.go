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

// Callbacks is the dispatch table DecodeOne invokes exactly once per
// call. Width-specific operations (uint8/16/32/64, negint8/16/32/64,
// float2/4/8) are consolidated into width- or kind-parameterized
// methods; this is a plain record of methods, not an inheritance
// hierarchy, matching one callback surface per streaming event.
type Callbacks interface {
	// UnsignedInt reports a major-0 item of the given width and value.
	UnsignedInt(w Width, value uint64)
	// NegativeInt reports a major-1 item of the given width and raw
	// magnitude (logical value -1-m).
	NegativeInt(w Width, m uint64)

	// ByteString reports a complete definite byte string of arg bytes,
	// already consumed from the input.
	ByteString(bytes []byte)
	// ByteStringStart reports the header of an indefinite byte string;
	// chunk and IndefBreak calls follow.
	ByteStringStart()

	// String is the TextString analogue of ByteString.
	String(bytes []byte)
	// StringStart is the TextString analogue of ByteStringStart.
	StringStart()

	// ArrayStart reports a definite array header declaring n elements.
	ArrayStart(n int)
	// IndefArrayStart reports an indefinite array header.
	IndefArrayStart()

	// MapStart reports a definite map header declaring n pairs.
	MapStart(n int)
	// IndefMapStart reports an indefinite map header.
	IndefMapStart()

	// Tag reports a major-6 tag header with the given tag value.
	Tag(tag uint64)

	// Boolean, Null, and Undefined report the three named major-7
	// simple values (codes 21/20, 22, 23 respectively).
	Boolean(v bool)
	Null()
	Undefined()
	// Simple reports any other major-7 simple-value code.
	Simple(code uint8)
	// Float reports a major-7 float of the given kind and value.
	Float(kind FloatKind, value float64)
	// IndefBreak reports the major-7 AI=31 break byte.
	IndefBreak()
}
