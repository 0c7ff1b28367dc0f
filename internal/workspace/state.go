// Package workspace implements the UUID workspace state machine.
//
// A State is changed only through Apply, which maps (State, Event) to the
// next State. Store wraps a State for a single interactive surface and
// notifies subscribers synchronously after every dispatched event.
package workspace

import (
	"slices"

	"github.com/d-kuro/uuidw/internal/registry"
)

// DefaultVariant is the variant selected when a workspace is mounted.
const DefaultVariant = registry.V4

// State is the complete workspace state.
type State struct {
	Selected      registry.Variant
	Current       string   // most recent single identifier for Selected
	BulkCountText string   // empty or 1-2 digits
	Bulk          []string // last bulk batch in generation order
}

// Clone returns a copy that shares no slice memory with s.
func (s State) Clone() State {
	s.Bulk = slices.Clone(s.Bulk)
	return s
}

// Event is one of SelectVariant, RegenerateSingle, UpdateBulkCountText or GenerateBulk.
type Event interface {
	event()
}

// SelectVariant switches the active variant.
type SelectVariant struct {
	Variant registry.Variant
}

// RegenerateSingle replaces the current identifier.
type RegenerateSingle struct{}

// UpdateBulkCountText proposes new bulk-count text.
type UpdateBulkCountText struct {
	Raw string
}

// GenerateBulk produces as many identifiers as the bulk-count text says.
type GenerateBulk struct{}

func (SelectVariant) event()       {}
func (RegenerateSingle) event()    {}
func (UpdateBulkCountText) event() {}
func (GenerateBulk) event()        {}

// Initial returns the state of a freshly mounted workspace with v selected.
func Initial(v registry.Variant, gen registry.Generator) State {
	return State{
		Selected: v,
		Current:  gen.Generate(v),
	}
}

// Apply returns the state that results from e. The input state is not modified.
//
// Selecting the variant that is already active, or an unsupported one, is a
// no-op. Count text that fails IsValidCountInput is dropped silently.
func Apply(s State, e Event, gen registry.Generator) State {
	switch e := e.(type) {
	case SelectVariant:
		if e.Variant == s.Selected || !e.Variant.Valid() {
			return s
		}
		return Initial(e.Variant, gen)

	case RegenerateSingle:
		s.Current = gen.Generate(s.Selected)
		return s

	case UpdateBulkCountText:
		if IsValidCountInput(e.Raw) {
			s.BulkCountText = e.Raw
		}
		return s

	case GenerateBulk:
		n, err := ParseCount(s.BulkCountText)
		if err != nil {
			return s
		}
		bulk := make([]string, 0, n)
		for i := 0; i < n; i++ {
			bulk = append(bulk, gen.Generate(s.Selected))
		}
		s.Bulk = bulk
		return s
	}
	return s
}
