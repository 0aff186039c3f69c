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

// widthForAI maps an additional-information class in {24,25,26,27} to
// the argument width it selects.
func widthForAI(ai byte) Width {
	switch ai {
	case 24:
		return Width8
	case 25:
		return Width16
	case 26:
		return Width32
	default:
		return Width64
	}
}

// DecodeOne reads at most one complete CBOR data item header (plus
// any immediate payload, such as a definite byte string's bytes) from
// buf and invokes exactly one method of cb on success. It never reads
// past len(buf). On NeedMoreData or Malformed, no callback is invoked
// and read reports 0.
func DecodeOne(buf []byte, cb Callbacks) (status Status, read int) {
	if len(buf) < 1 {
		return NeedMoreData, 0
	}
	ib := buf[0]
	mt := Major(ib >> 5)
	ai := ib & 0x1f

	if ai >= 28 && ai <= 30 {
		return Malformed, 0
	}

	indefinite := ai == 31
	if indefinite && (mt == MajorUnsignedInt || mt == MajorNegativeInt || mt == MajorTag) {
		return Malformed, 0
	}

	headerLen := 1
	var arg uint64
	if !indefinite {
		if ai <= 23 {
			arg = uint64(ai)
		} else {
			w := widthForAI(ai)
			n := w.Bytes()
			if len(buf) < 1+n {
				return NeedMoreData, 0
			}
			arg = loadArg(buf, 1, w)
			headerLen = 1 + n
		}
	}

	switch mt {
	case MajorUnsignedInt:
		cb.UnsignedInt(uintWidthForAI(ai), arg)
		return Finished, headerLen

	case MajorNegativeInt:
		cb.NegativeInt(uintWidthForAI(ai), arg)
		return Finished, headerLen

	case MajorByteString:
		if indefinite {
			cb.ByteStringStart()
			return Finished, headerLen
		}
		if arg > uint64(len(buf)-headerLen) {
			return NeedMoreData, 0
		}
		total := headerLen + int(arg)
		cb.ByteString(buf[headerLen:total])
		return Finished, total

	case MajorTextString:
		if indefinite {
			cb.StringStart()
			return Finished, headerLen
		}
		if arg > uint64(len(buf)-headerLen) {
			return NeedMoreData, 0
		}
		total := headerLen + int(arg)
		cb.String(buf[headerLen:total])
		return Finished, total

	case MajorArray:
		if indefinite {
			cb.IndefArrayStart()
		} else {
			cb.ArrayStart(int(arg))
		}
		return Finished, headerLen

	case MajorMap:
		if indefinite {
			cb.IndefMapStart()
		} else {
			cb.MapStart(int(arg))
		}
		return Finished, headerLen

	case MajorTag:
		cb.Tag(arg)
		return Finished, headerLen

	case MajorFloatOrSimple:
		return decodeMT7(buf, ai, cb)

	default:
		return Malformed, 0
	}
}

// uintWidthForAI is the narrowest-width rule for major types 0 and 1:
// any AI<=23 selects an 8-bit callback even though the value may fit
// in fewer bits; AI 24/25/26/27 select 8/16/32/64 respectively.
func uintWidthForAI(ai byte) Width {
	if ai <= 23 {
		return Width8
	}
	return widthForAI(ai)
}

// decodeMT7 handles major type 7: booleans/null/undefined, simple
// values, floats, and the indefinite-length break code.
func decodeMT7(buf []byte, ai byte, cb Callbacks) (Status, int) {
	switch {
	case ai == 31:
		cb.IndefBreak()
		return Finished, 1

	case ai >= 20 && ai <= 23:
		switch ai {
		case 20:
			cb.Boolean(false)
		case 21:
			cb.Boolean(true)
		case 22:
			cb.Null()
		case 23:
			cb.Undefined()
		}
		return Finished, 1

	case ai < 20:
		cb.Simple(ai)
		return Finished, 1

	case ai == 24:
		if len(buf) < 2 {
			return NeedMoreData, 0
		}
		code := buf[1]
		if code < 32 {
			return Malformed, 0
		}
		cb.Simple(code)
		return Finished, 2

	case ai == 25:
		if len(buf) < 3 {
			return NeedMoreData, 0
		}
		cb.Float(FloatHalf, loadFloat16(buf, 1))
		return Finished, 3

	case ai == 26:
		if len(buf) < 5 {
			return NeedMoreData, 0
		}
		cb.Float(FloatSingle, loadFloat32(buf, 1))
		return Finished, 5

	default: // ai == 27
		if len(buf) < 9 {
			return NeedMoreData, 0
		}
		cb.Float(FloatDouble, loadFloat64(buf, 1))
		return Finished, 9
	}
}
