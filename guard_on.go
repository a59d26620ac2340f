//go:build chunkqguard

package chunkq

import "sync/atomic"

// guard detects concurrent misuse of one side of the SPSC contract.
// Enabled by the chunkqguard build tag; costs a CAS plus a store per
// guarded operation.
type guard struct {
	active atomic.Uint32
}

func (g *guard) enter(msg string) {
	if !g.active.CompareAndSwap(0, 1) {
		panic(msg)
	}
}

func (g *guard) exit() {
	g.active.Store(0)
}
