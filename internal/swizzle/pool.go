package swizzle

import (
	"bytes"
	"sync"
)

// pool is a typed sync.Pool that resets values on the way back in.
type pool[T any] struct {
	pool  sync.Pool
	reset func(T)
}

func newPool[T any](generate func() T, reset func(T)) *pool[T] {
	return &pool[T]{
		pool:  sync.Pool{New: func() any { return generate() }},
		reset: reset,
	}
}

func (p *pool[T]) get() T {
	return p.pool.Get().(T)
}

func (p *pool[T]) put(value T) {
	p.reset(value)
	p.pool.Put(value)
}

// buffers backs template execution; both outputs render at once.
var buffers = newPool(
	func() *bytes.Buffer { return new(bytes.Buffer) },
	func(b *bytes.Buffer) { b.Reset() },
)
