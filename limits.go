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

// Limits is an optional resource-bounding policy consulted by the
// builder during one Load. A zero field disables that particular
// check; the zero Limits value disables all three, reproducing the
// original unbounded behavior exactly.
//
// Exceeding any limit yields SyntaxError at the position of the
// header that pushed the count over its bound -- this is a semantic
// rule enforced by the builder, not a wire-format violation.
type Limits struct {
	// MaxDepth bounds the nesting of arrays, maps, tags, and
	// indefinite strings.
	MaxDepth int `json:"maxDepth,omitempty"`
	// MaxItems bounds the total number of items constructed during
	// one Load, including the root and every nested item.
	MaxItems int `json:"maxItems,omitempty"`
	// MaxStringBytes bounds the byte length claimed by a single
	// definite byte-string or text-string header.
	MaxStringBytes int `json:"maxStringBytes,omitempty"`
}
