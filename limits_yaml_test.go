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

func TestLoadLimitsYAML(t *testing.T) {
	doc := []byte("maxDepth: 64\nmaxItems: 1000\nmaxStringBytes: 4096\n")
	limits, err := LoadLimitsYAML(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limits.MaxDepth != 64 || limits.MaxItems != 1000 || limits.MaxStringBytes != 4096 {
		t.Fatalf("got %+v", limits)
	}
}

func TestLoadLimitsYAMLRejectsGarbage(t *testing.T) {
	_, err := LoadLimitsYAML([]byte("maxDepth: [not, a, number]\n"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
