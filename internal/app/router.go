package app

import (
	"fmt"
	"sync"

	"esg-sunshine/internal/domain"
)

// Router holds the active screen. There is no history.
type Router struct {
	mu      sync.RWMutex
	current domain.View
}

func NewRouter() *Router {
	return &Router{current: domain.ViewDashboard}
}

func (r *Router) Navigate(v domain.View) error {
	if !v.Valid() {
		return fmt.Errorf("app: unknown view %q", v)
	}
	r.mu.Lock()
	r.current = v
	r.mu.Unlock()
	return nil
}

func (r *Router) Current() domain.View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}
