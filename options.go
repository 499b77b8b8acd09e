// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscbuf

// Builder configures a Storage/Queue pair before construction. There is
// only one protocol in this package, so Builder exists purely to make
// Provider wiring and fresh-vs-attach explicit at the call site.
//
// Example:
//
//	q, storage, err := spscbuf.New(1 << 16).WithProvider(memprovider.Heap{}).Build()
type Builder struct {
	size     uint64
	provider Provider
	attach   bool
}

// New creates a Builder that will manage a region of size bytes.
func New(size uint64) *Builder {
	return &Builder{size: size}
}

// WithProvider sets the Provider that supplies the backing region. Required
// before calling Build.
func (b *Builder) WithProvider(p Provider) *Builder {
	b.provider = p
	return b
}

// Attach configures Build to attach to an already-initialised region
// instead of writing a fresh header. Use this on the second process (or
// second call) that maps a region another OpenFresh/Build already
// initialised.
func (b *Builder) Attach() *Builder {
	b.attach = true
	return b
}

// Build acquires a region from the configured Provider and returns a Queue
// bound to it, along with the underlying Storage (callers close Storage,
// not Queue, when done). Panics if WithProvider was never called.
func (b *Builder) Build() (*Queue, *Storage, error) {
	if b.provider == nil {
		panic("spscbuf: Builder requires WithProvider")
	}
	var storage *Storage
	var err error
	if b.attach {
		storage, err = OpenAttach(b.provider, b.size)
	} else {
		storage, err = Open(b.provider, b.size)
	}
	if err != nil {
		return nil, nil, err
	}
	return NewQueue(storage), storage, nil
}
