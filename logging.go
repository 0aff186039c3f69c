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
	"log"
	"sync"
)

// logger is nil by default: diagnostic output stays disabled until a
// caller opts in via SetLogger.
var (
	loggerMu sync.RWMutex
	logger   *log.Logger
)

// SetLogger installs l as the destination for one diagnostic line per
// Load call. Passing nil disables logging.
func SetLogger(l *log.Logger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

func logLoad(opts *LoadOptions, pos int, err error) {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l == nil {
		return
	}
	id := ""
	if opts != nil {
		id = opts.CorrelationID
	}
	if id == "" {
		id = newCorrelationID()
	}
	if err != nil {
		l.Printf("cbor: load id=%s consumed=%d err=%v", id, pos, err)
		return
	}
	l.Printf("cbor: load id=%s consumed=%d ok", id, pos)
}
