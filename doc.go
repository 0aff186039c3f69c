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

// Package cbor decodes RFC 8949 Concise Binary Object Representation
// data into a reference-counted item graph.
//
// The package is organized, leaves first, as a byte-level loader, a
// single-shot streaming decoder (DecodeOne), a pushdown-stack tree
// builder (Context) driven by a load loop (Load), and an Item model
// supporting construction, O(1) inspection, mutation of in-progress
// containers, deep copy, and manual reference counting.
//
// Load is the entry point most callers want:
//
//	it, err := cbor.Load(buf)
//	if err != nil {
//		var e *cbor.Error
//		if errors.As(err, &e) {
//			// e.Code, e.Position
//		}
//		return err
//	}
//	defer cbor.Decref(&it)
package cbor
