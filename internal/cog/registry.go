package cog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested cog is not loaded.
var ErrNotFound = errors.New("cog not found")

// Registry holds the loaded cogs in registration order. It is built
// once at startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	order []string
	cogs  map[string]*Cog
}

func NewRegistry() *Registry {
	return &Registry{cogs: make(map[string]*Cog)}
}

// GetOrCreate returns the cog with the given name, creating it on first use.
func (r *Registry) GetOrCreate(name string) *Cog {
	if c, ok := r.cogs[name]; ok {
		return c
	}
	c := &Cog{Name: name}
	r.cogs[name] = c
	r.order = append(r.order, name)
	return c
}

// Get returns a loaded cog or ErrNotFound.
func (r *Registry) Get(name string) (*Cog, error) {
	if c, ok := r.cogs[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Names returns all cog names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// FindCommand looks a command up by qualified name across all cogs and
// returns it with its owning cog.
func (r *Registry) FindCommand(qualified string) (*Cog, *Command, bool) {
	for _, name := range r.order {
		c := r.cogs[name]
		for _, cmd := range append(c.WalkSlash(), c.WalkMessage()...) {
			if cmd.QualifiedName == qualified || cmd.Name == qualified {
				return c, cmd, true
			}
		}
	}
	return nil, nil, false
}
