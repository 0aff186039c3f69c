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

// frameKind identifies the kind of partially-constructed container a
// pushdown frame describes.
type frameKind int

const (
	frameDefiniteArray frameKind = iota
	frameIndefiniteArray
	frameDefiniteMap
	frameIndefiniteMap
	frameTag
	frameIndefiniteByteString
	frameIndefiniteTextString
)

// frame is one pushdown-stack entry: the in-progress container item,
// plus whatever completion state that container kind needs.
type frame struct {
	kind      frameKind
	item      *Item
	remaining int   // definite array/map: elements or pairs still expected
	pendingKey *Item // map: a received key awaiting its value
}

// Context implements Callbacks, assembling streaming decode events
// into a complete item tree via a pushdown stack of pending
// containers. A Context is driven by exactly one Load at a time; see
// load.go.
type Context struct {
	root   *Item
	stack  []frame
	alloc  allocator
	limits *Limits

	itemCount int

	allocationFailed bool
	syntaxError      bool
	errPosition      int

	// curPos is the byte position of the item DecodeOne is currently
	// reporting, set by the load driver before each callback fires, so
	// that syntax/allocation errors raised from within a callback can
	// be attributed to the right offset.
	curPos int
}

// newContext constructs a Context ready to drive one Load.
func newContext(a allocator, limits *Limits) *Context {
	return &Context{alloc: a, limits: limits}
}

func (c *Context) failSyntax() {
	if !c.syntaxError && !c.allocationFailed {
		c.syntaxError = true
		c.errPosition = c.curPos
	}
}

func (c *Context) failAlloc() {
	if !c.allocationFailed && !c.syntaxError {
		c.allocationFailed = true
		c.errPosition = c.curPos
	}
}

// failed reports whether a sticky error flag has already been raised;
// callbacks bail out early once one has, since the driver aborts the
// load on the next check anyway.
func (c *Context) failed() bool {
	return c.allocationFailed || c.syntaxError
}

func (c *Context) top() *frame {
	return &c.stack[len(c.stack)-1]
}

// countItem enforces Limits.MaxItems for one freshly constructed item
// (including the root). Returns false if the limit was just exceeded.
func (c *Context) countItem() bool {
	if c.limits != nil && c.limits.MaxItems > 0 {
		c.itemCount++
		if c.itemCount > c.limits.MaxItems {
			c.failSyntax()
			return false
		}
	}
	return true
}

// pushFrame enforces Limits.MaxDepth before growing the stack.
func (c *Context) pushFrame(f frame) bool {
	if c.limits != nil && c.limits.MaxDepth > 0 && len(c.stack)+1 > c.limits.MaxDepth {
		c.failSyntax()
		return false
	}
	c.stack = append(c.stack, f)
	return true
}

// deliver reconciles one complete item (a leaf, or a just-completed
// composite cascading up from popComplete) with the current stack
// top: it becomes the root if the stack is empty, otherwise it is
// appended to the top frame per that frame's kind, which may in turn
// complete and cascade further.
func (c *Context) deliver(item *Item) {
	if len(c.stack) == 0 {
		c.root = item
		return
	}
	f := c.top()
	switch f.kind {
	case frameDefiniteArray:
		ArrayPush(f.item, item)
		f.remaining--
		if f.remaining == 0 {
			c.popComplete()
		}

	case frameIndefiniteArray:
		ArrayPush(f.item, item)

	case frameDefiniteMap, frameIndefiniteMap:
		if f.pendingKey == nil {
			f.pendingKey = item
			return
		}
		MapAdd(f.item, f.pendingKey, item)
		f.pendingKey = nil
		if f.kind == frameDefiniteMap {
			f.remaining--
			if f.remaining == 0 {
				c.popComplete()
			}
		}

	case frameTag:
		TagSetChild(f.item, item)
		c.popComplete()

	case frameIndefiniteByteString:
		if item.Major() != MajorByteString || !item.IsDefinite() {
			c.failSyntax()
			return
		}
		ByteStringAddChunk(f.item, item)

	case frameIndefiniteTextString:
		if item.Major() != MajorTextString || !item.IsDefinite() {
			c.failSyntax()
			return
		}
		StringAddChunk(f.item, item)
	}
}

// popComplete pops the top (now-complete) frame and delivers its
// container item to the new top, cascading as far as completions
// chain upward.
func (c *Context) popComplete() {
	f := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.deliver(f.item)
}

// openComposite pushes a frame for a just-constructed, not-yet-
// complete composite item. Zero-size definite containers are the
// caller's responsibility to deliver directly instead -- they can
// never receive a child to trigger completion.
func (c *Context) openComposite(f frame) {
	if !c.pushFrame(f) {
		return
	}
}

// --- Callbacks implementation ---

func (c *Context) UnsignedInt(w Width, value uint64) {
	if c.failed() || !c.countItem() {
		return
	}
	it, ok := newUnsignedInt(c.alloc, w, value)
	if !ok {
		c.failAlloc()
		return
	}
	c.deliver(it)
}

func (c *Context) NegativeInt(w Width, m uint64) {
	if c.failed() || !c.countItem() {
		return
	}
	it, ok := newNegativeInt(c.alloc, w, m)
	if !ok {
		c.failAlloc()
		return
	}
	c.deliver(it)
}

func (c *Context) ByteString(bytes []byte) {
	if c.failed() {
		return
	}
	if c.limits != nil && c.limits.MaxStringBytes > 0 && len(bytes) > c.limits.MaxStringBytes {
		c.failSyntax()
		return
	}
	if !c.countItem() {
		return
	}
	owned := make([]byte, len(bytes))
	copy(owned, bytes)
	it, ok := newStringFromOwnedBytes(c.alloc, false, owned)
	if !ok {
		c.failAlloc()
		return
	}
	c.deliver(it)
}

func (c *Context) ByteStringStart() {
	if c.failed() {
		return
	}
	if len(c.stack) > 0 {
		top := c.top()
		if top.kind == frameIndefiniteByteString || top.kind == frameIndefiniteTextString {
			c.failSyntax()
			return
		}
	}
	if !c.countItem() {
		return
	}
	it, ok := newIndefiniteString(c.alloc, false)
	if !ok {
		c.failAlloc()
		return
	}
	c.openComposite(frame{kind: frameIndefiniteByteString, item: it})
}

func (c *Context) String(bytes []byte) {
	if c.failed() {
		return
	}
	if c.limits != nil && c.limits.MaxStringBytes > 0 && len(bytes) > c.limits.MaxStringBytes {
		c.failSyntax()
		return
	}
	if !c.countItem() {
		return
	}
	owned := make([]byte, len(bytes))
	copy(owned, bytes)
	it, ok := newStringFromOwnedBytes(c.alloc, true, owned)
	if !ok {
		c.failAlloc()
		return
	}
	c.deliver(it)
}

func (c *Context) StringStart() {
	if c.failed() {
		return
	}
	if len(c.stack) > 0 {
		top := c.top()
		if top.kind == frameIndefiniteByteString || top.kind == frameIndefiniteTextString {
			c.failSyntax()
			return
		}
	}
	if !c.countItem() {
		return
	}
	it, ok := newIndefiniteString(c.alloc, true)
	if !ok {
		c.failAlloc()
		return
	}
	c.openComposite(frame{kind: frameIndefiniteTextString, item: it})
}

func (c *Context) ArrayStart(n int) {
	if c.failed() || !c.countItem() {
		return
	}
	it, ok := newArray(c.alloc, true, n)
	if !ok {
		c.failAlloc()
		return
	}
	if n == 0 {
		c.deliver(it)
		return
	}
	c.openComposite(frame{kind: frameDefiniteArray, item: it, remaining: n})
}

func (c *Context) IndefArrayStart() {
	if c.failed() || !c.countItem() {
		return
	}
	it, ok := newArray(c.alloc, false, 0)
	if !ok {
		c.failAlloc()
		return
	}
	c.openComposite(frame{kind: frameIndefiniteArray, item: it})
}

func (c *Context) MapStart(n int) {
	if c.failed() || !c.countItem() {
		return
	}
	it, ok := newMap(c.alloc, true, n)
	if !ok {
		c.failAlloc()
		return
	}
	if n == 0 {
		c.deliver(it)
		return
	}
	c.openComposite(frame{kind: frameDefiniteMap, item: it, remaining: n})
}

func (c *Context) IndefMapStart() {
	if c.failed() || !c.countItem() {
		return
	}
	it, ok := newMap(c.alloc, false, 0)
	if !ok {
		c.failAlloc()
		return
	}
	c.openComposite(frame{kind: frameIndefiniteMap, item: it})
}

func (c *Context) Tag(tag uint64) {
	if c.failed() || !c.countItem() {
		return
	}
	it, ok := newTag(c.alloc, tag)
	if !ok {
		c.failAlloc()
		return
	}
	c.openComposite(frame{kind: frameTag, item: it})
}

func (c *Context) Boolean(v bool) {
	if c.failed() || !c.countItem() {
		return
	}
	code := uint8(20)
	if v {
		code = 21
	}
	it, ok := newFloat(c.alloc, FloatCtrl, 0, code)
	if !ok {
		c.failAlloc()
		return
	}
	c.deliver(it)
}

func (c *Context) Null() {
	if c.failed() || !c.countItem() {
		return
	}
	it, ok := newFloat(c.alloc, FloatCtrl, 0, 22)
	if !ok {
		c.failAlloc()
		return
	}
	c.deliver(it)
}

func (c *Context) Undefined() {
	if c.failed() || !c.countItem() {
		return
	}
	it, ok := newFloat(c.alloc, FloatCtrl, 0, 23)
	if !ok {
		c.failAlloc()
		return
	}
	c.deliver(it)
}

func (c *Context) Simple(code uint8) {
	if c.failed() || !c.countItem() {
		return
	}
	it, ok := newFloat(c.alloc, FloatCtrl, 0, code)
	if !ok {
		c.failAlloc()
		return
	}
	c.deliver(it)
}

func (c *Context) Float(kind FloatKind, value float64) {
	if c.failed() || !c.countItem() {
		return
	}
	it, ok := newFloat(c.alloc, kind, value, 0)
	if !ok {
		c.failAlloc()
		return
	}
	c.deliver(it)
}

func (c *Context) IndefBreak() {
	if c.failed() {
		return
	}
	if len(c.stack) == 0 {
		c.failSyntax()
		return
	}
	f := c.top()
	switch f.kind {
	case frameIndefiniteArray:
		markClosed(f.item)
		c.popComplete()
	case frameIndefiniteByteString, frameIndefiniteTextString:
		markClosed(f.item)
		c.popComplete()
	case frameIndefiniteMap:
		if f.pendingKey != nil {
			c.failSyntax()
			return
		}
		markClosed(f.item)
		c.popComplete()
	default:
		c.failSyntax()
	}
}
