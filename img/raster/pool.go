package raster

import "sync"

// Pool provides sync.Pool-based Buffer reuse for scratch images in
// multi-pass filters.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed buffer with the requested size.
// Callers must return it via Put when done.
func (p *Pool) Get(width, height int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.resize(width, height)
	clear(b.samples)
	return b
}

// Put returns a buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

// resize reshapes b to width×height. The sample slice is resliced when its
// capacity covers the new size and reallocated otherwise; sample values are
// left as they were.
func (b *Buffer) resize(width, height int) {
	if width <= 0 || height <= 0 || CheckSize(width, height) != nil {
		b.width, b.height = 0, 0
		b.samples = b.samples[:0]
		return
	}

	n := width * height
	if cap(b.samples) < n {
		b.samples = make([]float64, n)
	}
	b.samples = b.samples[:n]
	b.width, b.height = width, height
}

// CopyFrom reshapes b to the size of src and copies its samples, reusing b's
// storage when it is large enough. A nil src empties b.
func (b *Buffer) CopyFrom(src *Buffer) {
	if src == nil {
		b.resize(0, 0)
		return
	}
	b.resize(src.width, src.height)
	copy(b.samples, src.samples)
}
