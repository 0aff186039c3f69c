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

// LoadOptions carries diagnostics-only knobs for Load: neither field
// changes decode semantics for well-formed, within-limits input.
type LoadOptions struct {
	// Limits bounds nesting depth, item count, and string size. Nil
	// (or a zero Limits) disables all three checks.
	Limits *Limits
	// CorrelationID tags the diagnostic log line for this Load, if a
	// logger is installed via SetLogger. If empty, one is minted.
	CorrelationID string
}

// Load decodes exactly one complete top-level CBOR item from buf.
// Trailing bytes after the first complete item are left unconsumed
// and are not an error; the caller decides what, if anything, to do
// with them.
//
// On error, Load returns a nil item and an *Error describing the
// stable error code and the byte position at which it was detected.
func Load(buf []byte) (*Item, error) {
	return LoadWithOptions(buf, nil)
}

// LoadWithOptions is Load with diagnostics options; see LoadOptions.
func LoadWithOptions(buf []byte, opts *LoadOptions) (*Item, error) {
	return loadWithAllocator(buf, defaultAllocator, opts)
}

func loadWithAllocator(buf []byte, a allocator, opts *LoadOptions) (*Item, error) {
	if len(buf) == 0 {
		err := &Error{Code: NoData, Position: 0}
		logLoad(opts, 0, err)
		return nil, err
	}

	var limits *Limits
	if opts != nil {
		limits = opts.Limits
	}
	ctx := newContext(a, limits)

	pos := 0
	for {
		if pos == len(buf) && len(ctx.stack) > 0 {
			return failLoad(ctx, NotEnoughData, pos, opts)
		}
		ctx.curPos = pos
		status, n := DecodeOne(buf[pos:], ctx)
		switch status {
		case NeedMoreData:
			return failLoad(ctx, NotEnoughData, pos, opts)
		case Malformed:
			return failLoad(ctx, ErrMalformed, pos, opts)
		case Finished:
			pos += n
			if ctx.allocationFailed {
				return failLoad(ctx, MemError, ctx.errPosition, opts)
			}
			if ctx.syntaxError {
				return failLoad(ctx, SyntaxError, ctx.errPosition, opts)
			}
		}
		if len(ctx.stack) == 0 && ctx.root != nil {
			logLoad(opts, pos, nil)
			return ctx.root, nil
		}
	}
}

// failLoad unwinds a partially-built stack on error, decref'ing every
// pending container (and any half-received map key) exactly once, and
// returns the diagnostic error.
func failLoad(ctx *Context, code ErrorCode, pos int, opts *LoadOptions) (*Item, error) {
	for i := len(ctx.stack) - 1; i >= 0; i-- {
		f := ctx.stack[i]
		item := f.item
		Decref(&item)
		if f.pendingKey != nil {
			key := f.pendingKey
			Decref(&key)
		}
	}
	if ctx.root != nil {
		root := ctx.root
		Decref(&root)
	}
	err := &Error{Code: code, Position: pos}
	logLoad(opts, pos, err)
	return nil, err
}
