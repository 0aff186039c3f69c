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

import (
	"encoding/binary"
	"math"

	"github.com/dchest/siphash"
)

// hashKey0, hashKey1 are fixed SipHash keys; Hash is a structural
// digest for in-process use (e.g. deduplicating decoded map keys in a
// hash set), not a content-addressing or cross-process hash, so a
// fixed key is sufficient.
const (
	hashKey0 uint64 = 0x6462636865737400
	hashKey1 uint64 = 0x7369706861736821
)

// Hash returns a structural digest of it: two items with the same
// major type, width/indefinite choice, and payload (recursing into
// children in encoded order) produce the same hash. ok is false for
// an indefinite-length container or string that has not yet received
// its closing break -- its value is not yet stable.
func (it *Item) Hash() (uint64, bool) {
	var buf []byte
	buf, ok := appendHashBytes(buf, it)
	if !ok {
		return 0, false
	}
	return siphash.Hash(hashKey0, hashKey1, buf), true
}

func appendHashBytes(buf []byte, it *Item) ([]byte, bool) {
	buf = append(buf, byte(it.Major()))
	switch d := it.data.(type) {
	case *uintData:
		buf = append(buf, byte(d.width))
		buf = appendU64(buf, d.value)

	case *negintData:
		buf = append(buf, byte(d.width))
		buf = appendU64(buf, d.magnitude)

	case *stringData:
		if d.chunks != nil {
			if !d.closed {
				return buf, false
			}
			buf = append(buf, 1)
			for _, c := range d.chunks {
				var ok bool
				buf, ok = appendHashBytes(buf, c)
				if !ok {
					return buf, false
				}
			}
			return buf, true
		}
		buf = append(buf, 0)
		buf = appendU64(buf, uint64(len(d.bytes)))
		buf = append(buf, d.bytes...)

	case *arrayData:
		if !d.definite && !d.closed {
			return buf, false
		}
		buf = appendU64(buf, uint64(len(d.items)))
		for _, c := range d.items {
			var ok bool
			buf, ok = appendHashBytes(buf, c)
			if !ok {
				return buf, false
			}
		}

	case *mapData:
		if !d.definite && !d.closed {
			return buf, false
		}
		buf = appendU64(buf, uint64(len(d.entries)))
		for _, e := range d.entries {
			var ok bool
			buf, ok = appendHashBytes(buf, e.Key)
			if !ok {
				return buf, false
			}
			buf, ok = appendHashBytes(buf, e.Value)
			if !ok {
				return buf, false
			}
		}

	case *tagData:
		buf = appendU64(buf, d.tag)
		if d.child == nil {
			return buf, false
		}
		var ok bool
		buf, ok = appendHashBytes(buf, d.child)
		if !ok {
			return buf, false
		}

	case *floatData:
		buf = append(buf, byte(d.kind))
		if d.kind == FloatCtrl {
			buf = append(buf, d.ctrl)
		} else {
			buf = appendU64(buf, math.Float64bits(d.value))
		}
	}
	return buf, true
}

func appendU64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}
