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

import "testing"

func TestConstructorsAndAccessors(t *testing.T) {
	u := NewUnsignedInt(Width16, 42)
	if w, ok := u.Width(); !ok || w != Width16 {
		t.Fatalf("width=%v ok=%v", w, ok)
	}
	if v, ok := u.Uint(); !ok || v != 42 {
		t.Fatalf("value=%d ok=%v", v, ok)
	}

	n := NewNegativeInt(Width8, 5)
	if m, ok := n.NegativeMagnitude(); !ok || m != 5 {
		t.Fatalf("magnitude=%d ok=%v", m, ok)
	}
	if v, ok := n.NegativeValue(); !ok || v != -6 {
		t.Fatalf("value=%d ok=%v", v, ok)
	}

	b := NewBool(true)
	if v, ok := b.Boolean(); !ok || !v {
		t.Fatalf("boolean=%v ok=%v", v, ok)
	}
	if NewNull().IsNull() != true {
		t.Fatal("expected IsNull")
	}
	if NewUndefined().IsUndefined() != true {
		t.Fatal("expected IsUndefined")
	}

	s := NewSimple(200)
	code, ok := s.SimpleValue()
	if !ok || code != 200 {
		t.Fatalf("code=%d ok=%v", code, ok)
	}

	f := NewFloat(FloatDouble, 3.5)
	v, ok := f.Float()
	if !ok || v != 3.5 {
		t.Fatalf("float=%v ok=%v", v, ok)
	}
	if k, ok := f.FloatKind(); !ok || k != FloatDouble {
		t.Fatalf("kind=%v ok=%v", k, ok)
	}
}

func TestArrayMutators(t *testing.T) {
	arr := NewDefiniteArray(2)
	ArrayPush(arr, NewUnsignedInt(Width8, 1))
	ArrayPush(arr, NewUnsignedInt(Width8, 2))
	items, ok := arr.Items()
	if !ok || len(items) != 2 {
		t.Fatalf("items=%v ok=%v", items, ok)
	}
	n, ok := arr.Len()
	if !ok || n != 2 {
		t.Fatalf("len=%d ok=%v", n, ok)
	}
}

func TestMapMutators(t *testing.T) {
	m := NewDefiniteMap(1)
	MapAdd(m, NewTextStringFromOwnedBytes([]byte("k")), NewUnsignedInt(Width8, 9))
	entries, ok := m.Entries()
	if !ok || len(entries) != 1 {
		t.Fatalf("entries=%v ok=%v", entries, ok)
	}
}

func TestTagMutator(t *testing.T) {
	tag := NewTag(42)
	TagSetChild(tag, NewUnsignedInt(Width8, 1))
	child, ok := tag.TagChild()
	if !ok {
		t.Fatal("expected tag child")
	}
	v, _ := child.Uint()
	if v != 1 {
		t.Fatalf("child value=%d", v)
	}
}

func TestByteStringChunkMutators(t *testing.T) {
	s := NewIndefiniteByteString()
	ByteStringAddChunk(s, NewByteStringFromOwnedBytes([]byte{1, 2}))
	ByteStringAddChunk(s, NewByteStringFromOwnedBytes([]byte{3}))
	n, ok := s.ChunkCount()
	if !ok || n != 2 {
		t.Fatalf("chunk count=%d ok=%v", n, ok)
	}
}

func TestMutatorsPanicOnWrongMajorType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	ArrayPush(NewUnsignedInt(Width8, 1), NewUnsignedInt(Width8, 2))
}
