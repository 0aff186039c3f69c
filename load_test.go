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

func TestLoadEmptyInputIsNoData(t *testing.T) {
	_, err := Load(nil)
	assertErrorCode(t, err, NoData, 0)
}

func TestLoadMalformedReservedAI(t *testing.T) {
	_, err := Load([]byte{0x1c})
	assertErrorCode(t, err, ErrMalformed, 0)
}

func TestLoadTrailingBytesNotConsumedNotError(t *testing.T) {
	it, err := Load([]byte{0x00, 0x01, 0x02})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := it.Uint()
	if v != 0 {
		t.Fatalf("got %d, want 0", v)
	}
}

func TestLoadAllocationFailureYieldsMemErrorAndNoLeak(t *testing.T) {
	in := []byte{0x83, 0x01, 0x02, 0x03} // definite array of 3 uints: 4 allocations
	for k := 1; k <= 4; k++ {
		a := &countingAllocator{k: k}
		it, err := loadWithAllocator(in, a, nil)
		if it != nil {
			t.Fatalf("k=%d: expected nil item", k)
		}
		e, ok := err.(*Error)
		if !ok || e.Code != MemError {
			t.Fatalf("k=%d: expected MemError, got %v", k, err)
		}
	}
	// k == 0 never fails: load succeeds, and exactly 4 allocations were
	// made.
	a := &countingAllocator{k: 0}
	it, err := loadWithAllocator(in, a, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.allocations() != 4 {
		t.Fatalf("allocations = %d, want 4", a.allocations())
	}
	Decref(&it)
}

func TestLoadMaxDepthLimit(t *testing.T) {
	// 81 81 81 00: nested arrays 3 deep, each holding one element, then a uint.
	in := []byte{0x81, 0x81, 0x81, 0x00}

	if _, err := LoadWithOptions(in, &LoadOptions{Limits: &Limits{MaxDepth: 3}}); err != nil {
		t.Fatalf("MaxDepth=3 (exact nesting) should succeed, got %v", err)
	}
	_, err := LoadWithOptions(in, &LoadOptions{Limits: &Limits{MaxDepth: 2}})
	assertErrorCode(t, err, SyntaxError, -1)
}

func TestLoadZeroLimitsMatchesNoLimits(t *testing.T) {
	in := []byte{0x83, 0x01, 0x02, 0x03}
	a, err1 := Load(in)
	if err1 != nil {
		t.Fatalf("unexpected error: %v", err1)
	}
	b, err2 := LoadWithOptions(in, &LoadOptions{Limits: &Limits{}})
	if err2 != nil {
		t.Fatalf("unexpected error: %v", err2)
	}
	ha, _ := a.Hash()
	hb, _ := b.Hash()
	if ha != hb {
		t.Fatalf("hashes differ: %x vs %x", ha, hb)
	}
}

func TestLoadMaxItemsLimit(t *testing.T) {
	in := []byte{0x83, 0x01, 0x02, 0x03} // 4 items total: array + 3 uints
	if _, err := LoadWithOptions(in, &LoadOptions{Limits: &Limits{MaxItems: 4}}); err != nil {
		t.Fatalf("MaxItems=4 should succeed, got %v", err)
	}
	_, err := LoadWithOptions(in, &LoadOptions{Limits: &Limits{MaxItems: 3}})
	assertErrorCode(t, err, SyntaxError, -1)
}

func TestLoadMaxStringBytesLimit(t *testing.T) {
	in := []byte{0x43, 0x01, 0x02, 0x03} // 3-byte byte string
	if _, err := LoadWithOptions(in, &LoadOptions{Limits: &Limits{MaxStringBytes: 3}}); err != nil {
		t.Fatalf("MaxStringBytes=3 should succeed, got %v", err)
	}
	_, err := LoadWithOptions(in, &LoadOptions{Limits: &Limits{MaxStringBytes: 2}})
	assertErrorCode(t, err, SyntaxError, 0)
}
