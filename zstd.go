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
	"io"

	"github.com/klauspost/compress/zstd"
)

// LoadZstd decodes exactly one complete top-level CBOR item from a
// zstd-compressed stream, for the common case of CBOR blobs stored or
// transmitted zstd-compressed (event logs, snapshots). It is
// otherwise identical to LoadWithOptions.
func LoadZstd(r io.Reader, opts *LoadOptions) (*Item, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	buf, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return LoadWithOptions(buf, opts)
}
