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

func loadBytes(t *testing.T, b []byte) *Item {
	t.Helper()
	it, err := Load(b)
	if err != nil {
		t.Fatalf("Load(%x): %v", b, err)
	}
	return it
}

func TestBuilderNestedArrayCascade(t *testing.T) {
	// 82 81 01 02: outer array size 2 = [[1], 2]
	it := loadBytes(t, []byte{0x82, 0x81, 0x01, 0x02})
	outer, ok := it.Items()
	if !ok || len(outer) != 2 {
		t.Fatalf("outer items: %v ok=%v", outer, ok)
	}
	inner, ok := outer[0].Items()
	if !ok || len(inner) != 1 {
		t.Fatalf("inner items: %v ok=%v", inner, ok)
	}
	v, _ := inner[0].Uint()
	if v != 1 {
		t.Fatalf("inner[0] = %d, want 1", v)
	}
	v, _ = outer[1].Uint()
	if v != 2 {
		t.Fatalf("outer[1] = %d, want 2", v)
	}
}

func TestBuilderDefiniteArrayScenario(t *testing.T) {
	it := loadBytes(t, []byte{0x83, 0x01, 0x02, 0x03})
	if it.Major() != MajorArray || !it.IsDefinite() {
		t.Fatalf("major=%v definite=%v", it.Major(), it.IsDefinite())
	}
	items, _ := it.Items()
	if len(items) != 3 {
		t.Fatalf("len=%d", len(items))
	}
	for i, want := range []uint64{1, 2, 3} {
		v, ok := items[i].Uint()
		if !ok || v != want {
			t.Fatalf("items[%d] = %d, want %d", i, v, want)
		}
	}
}

func TestBuilderIndefiniteArrayScenario(t *testing.T) {
	it := loadBytes(t, []byte{0x9f, 0x01, 0x02, 0xff})
	if it.Major() != MajorArray || it.IsDefinite() {
		t.Fatalf("major=%v definite=%v", it.Major(), it.IsDefinite())
	}
	items, _ := it.Items()
	if len(items) != 2 {
		t.Fatalf("len=%d", len(items))
	}
}

func TestBuilderIndefiniteMapScenario(t *testing.T) {
	// bf 61 61 01 ff: indefinite map {"a": 1}
	it := loadBytes(t, []byte{0xbf, 0x61, 0x61, 0x01, 0xff})
	if it.Major() != MajorMap || it.IsDefinite() {
		t.Fatalf("major=%v definite=%v", it.Major(), it.IsDefinite())
	}
	entries, _ := it.Entries()
	if len(entries) != 1 {
		t.Fatalf("len=%d", len(entries))
	}
	key := entries[0].Key
	kb, ok := key.Bytes()
	if !ok || string(kb) != "a" {
		t.Fatalf("key = %q ok=%v", kb, ok)
	}
	v, _ := entries[0].Value.Uint()
	if v != 1 {
		t.Fatalf("value = %d, want 1", v)
	}
}

func TestBuilderIndefiniteByteStringChunks(t *testing.T) {
	// 5f 42 01 02 43 03 04 05 ff
	it := loadBytes(t, []byte{0x5f, 0x42, 0x01, 0x02, 0x43, 0x03, 0x04, 0x05, 0xff})
	if it.Major() != MajorByteString || it.IsDefinite() {
		t.Fatalf("major=%v definite=%v", it.Major(), it.IsDefinite())
	}
	n, ok := it.ChunkCount()
	if !ok || n != 2 {
		t.Fatalf("chunk count = %d ok=%v", n, ok)
	}
	c0, _ := it.Chunk(0)
	b0, _ := c0.Bytes()
	if string(b0) != "\x01\x02" {
		t.Fatalf("chunk0 = %x", b0)
	}
	c1, _ := it.Chunk(1)
	b1, _ := c1.Bytes()
	if string(b1) != "\x03\x04\x05" {
		t.Fatalf("chunk1 = %x", b1)
	}

	def := CopyDefinite(it)
	b, ok := def.Bytes()
	if !ok || string(b) != "\x01\x02\x03\x04\x05" {
		t.Fatalf("copy_definite bytes = %x ok=%v", b, ok)
	}
}

func TestBuilderTagScenario(t *testing.T) {
	// c0 74 "2013-03-21T20:04:00Z"
	it := loadBytes(t, []byte{
		0xc0, 0x74,
		'2', '0', '1', '3', '-', '0', '3', '-', '2', '1',
		'T', '2', '0', ':', '0', '4', ':', '0', '0', 'Z',
	})
	tag, ok := it.TagValue()
	if !ok || tag != 0 {
		t.Fatalf("tag = %d ok=%v", tag, ok)
	}
	child, ok := it.TagChild()
	if !ok {
		t.Fatal("no tag child")
	}
	b, _ := child.Bytes()
	if string(b) != "2013-03-21T20:04:00Z" {
		t.Fatalf("child bytes = %q", b)
	}
	tm, ok := it.Time()
	if !ok {
		t.Fatal("Time() failed")
	}
	if tm.Year() != 2013 || tm.Month() != 3 || tm.Day() != 21 {
		t.Fatalf("got %v", tm)
	}
}

func TestBuilderBreakWithEmptyStackIsSyntaxError(t *testing.T) {
	_, err := Load([]byte{0xff})
	assertErrorCode(t, err, SyntaxError, 0)
}

func TestBuilderTruncatedArrayIsNotEnoughData(t *testing.T) {
	_, err := Load([]byte{0x82, 0x01})
	assertErrorCode(t, err, NotEnoughData, 2)
}

func TestBuilderIllegalStringChunkMismatch(t *testing.T) {
	// 5f (indefinite byte string) followed by a text-string chunk (61 61 = "a")
	_, err := Load([]byte{0x5f, 0x61, 0x61, 0xff})
	assertErrorCode(t, err, SyntaxError, -1)
}

func TestBuilderNestedIndefiniteStringForbidden(t *testing.T) {
	// 5f (indefinite byte string) then 5f nested -- forbidden.
	_, err := Load([]byte{0x5f, 0x5f, 0xff, 0xff})
	assertErrorCode(t, err, SyntaxError, -1)
}

func TestBuilderBreakMidMapPairIsSyntaxError(t *testing.T) {
	// bf 61 61 ff : indefinite map, key "a" received, then break before value.
	_, err := Load([]byte{0xbf, 0x61, 0x61, 0xff})
	assertErrorCode(t, err, SyntaxError, -1)
}

func TestBuilderZeroSizeContainersCompleteImmediately(t *testing.T) {
	it := loadBytes(t, []byte{0x80}) // empty definite array
	items, _ := it.Items()
	if len(items) != 0 {
		t.Fatalf("len=%d", len(items))
	}

	it = loadBytes(t, []byte{0xa0}) // empty definite map
	entries, _ := it.Entries()
	if len(entries) != 0 {
		t.Fatalf("len=%d", len(entries))
	}
}

// assertErrorCode checks err is a *Error with the given code; if
// wantPos >= 0 the position is checked too.
func assertErrorCode(t *testing.T, err error, code ErrorCode, wantPos int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %v, got nil", code)
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if e.Code != code {
		t.Fatalf("expected code %v, got %v (%v)", code, e.Code, e)
	}
	if wantPos >= 0 && e.Position != wantPos {
		t.Fatalf("expected position %d, got %d", wantPos, e.Position)
	}
}
