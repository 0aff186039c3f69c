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

import "fmt"

// ErrorCode is one of the five stable, caller-visible error codes.
type ErrorCode int

const (
	// NoData indicates empty input.
	NoData ErrorCode = iota
	// NotEnoughData indicates the input ended mid-item.
	NotEnoughData
	// ErrMalformed indicates a reserved encoding or other
	// decoder-level protocol violation.
	ErrMalformed
	// MemError indicates the allocator returned a failure.
	MemError
	// SyntaxError indicates a builder-level protocol violation, such
	// as a misplaced break or illegal nesting.
	SyntaxError
)

func (c ErrorCode) String() string {
	switch c {
	case NoData:
		return "NoData"
	case NotEnoughData:
		return "NotEnoughData"
	case ErrMalformed:
		return "Malformed"
	case MemError:
		return "MemError"
	case SyntaxError:
		return "SyntaxError"
	default:
		return "ErrorCode(?)"
	}
}

// Error is the concrete representation of a load failure: a stable
// code plus the byte position in the input at which the violation was
// detected.
type Error struct {
	Code     ErrorCode
	Position int
}

func (e *Error) Error() string {
	return fmt.Sprintf("cbor: %s at position %d", e.Code, e.Position)
}

// Is supports errors.Is(err, target) comparisons against another
// *Error by code alone, ignoring position.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
