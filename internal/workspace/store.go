package workspace

import (
	pkglog "github.com/d-kuro/uuidw/internal/log"
	"github.com/d-kuro/uuidw/internal/registry"
)

// Listener is called with a snapshot of the state after each dispatch.
type Listener func(State)

type subscription struct {
	id int
	fn Listener
}

// Store owns the workspace state of one surface. It is not safe for
// concurrent use; the surface's event loop is the only caller.
type Store struct {
	gen       registry.Generator
	state     State
	listeners []subscription
	nextID    int
}

// New mounts a workspace with DefaultVariant selected.
func New(gen registry.Generator) *Store {
	return NewWithVariant(gen, DefaultVariant)
}

// NewWithVariant mounts a workspace as if SelectVariant(v) had just been
// applied. Unsupported variants fall back to DefaultVariant.
func NewWithVariant(gen registry.Generator, v registry.Variant) *Store {
	if !v.Valid() {
		v = DefaultVariant
	}
	return &Store{
		gen:   gen,
		state: Initial(v, gen),
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	return s.state.Clone()
}

// Dispatch applies e, then notifies every listener in subscription order.
func (s *Store) Dispatch(e Event) State {
	prev := s.state
	s.state = Apply(s.state, e, s.gen)

	logger := pkglog.L()
	switch e := e.(type) {
	case SelectVariant:
		if prev.Selected == s.state.Selected {
			logger.Debug().Stringer("variant", e.Variant).Msg("variant selection ignored")
		} else {
			logger.Debug().Stringer("variant", s.state.Selected).Str("uuid", s.state.Current).Msg("variant selected")
		}
	case UpdateBulkCountText:
		if s.state.BulkCountText != e.Raw {
			logger.Debug().Str("raw", e.Raw).Msg("bulk count input rejected")
		}
	case GenerateBulk:
		logger.Debug().Stringer("variant", s.state.Selected).Int("count", len(s.state.Bulk)).Msg("bulk generated")
	}

	snapshot := s.state.Clone()
	for _, sub := range s.listeners {
		sub.fn(snapshot.Clone())
	}
	return snapshot
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
