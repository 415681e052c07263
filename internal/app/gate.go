package app

import "sync/atomic"

// Gate is a one-way login switch. Once opened it stays open.
type Gate struct {
	required bool
	open     atomic.Bool
}

func NewGate(required bool) *Gate {
	return &Gate{required: required}
}

func (g *Gate) Required() bool { return g.required }

func (g *Gate) Authenticated() bool {
	return !g.required || g.open.Load()
}

func (g *Gate) Login() {
	g.open.Store(true)
}
