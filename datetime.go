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

import "github.com/sneller-labs/gocbor/date"

// Time recognizes the two RFC 8949 date-time tags: Tag(0), an RFC
// 3339 text string, and Tag(1), a Unix epoch offset carried as an
// integer or float child. ok is false for any other item.
func (it *Item) Time() (date.Time, bool) {
	tag, ok := it.tagd()
	if !ok || tag.child == nil {
		return date.Time{}, false
	}
	switch tag.tag {
	case 0:
		return time0(tag.child)
	case 1:
		return time1(tag.child)
	default:
		return date.Time{}, false
	}
}

func time0(child *Item) (date.Time, bool) {
	buf, ok := child.Bytes()
	if !ok || child.Major() != MajorTextString {
		return date.Time{}, false
	}
	return date.Parse(buf)
}

func time1(child *Item) (date.Time, bool) {
	switch child.Major() {
	case MajorUnsignedInt:
		v, _ := child.Uint()
		return date.Unix(int64(v), 0), true
	case MajorNegativeInt:
		v, ok := child.NegativeValue()
		if !ok {
			return date.Time{}, false
		}
		return date.Unix(v, 0), true
	case MajorFloatOrSimple:
		f, ok := child.Float()
		if !ok {
			return date.Time{}, false
		}
		sec := int64(f)
		ns := int64((f - float64(sec)) * 1e9)
		return date.Unix(sec, ns), true
	default:
		return date.Time{}, false
	}
}
