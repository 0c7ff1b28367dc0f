// Package registry maps UUID variants to their generation algorithms.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Variant identifies which generation algorithm produces an identifier.
// The numeric value matches the RFC 9562 version nibble.
type Variant uint8

const (
	V1 Variant = 1 // time and node based
	V4 Variant = 4 // random
	V7 Variant = 7 // Unix-epoch time ordered, random tail
)

// ErrUnknownVariant is returned when a variant name cannot be parsed.
var ErrUnknownVariant = errors.New("unknown UUID variant")

// Variants returns every supported variant in display order.
func Variants() []Variant {
	return []Variant{V1, V4, V7}
}

// String returns the short lowercase name, e.g. "v7".
func (v Variant) String() string {
	switch v {
	case V1, V4, V7:
		return fmt.Sprintf("v%d", uint8(v))
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// Label returns the human readable radio label for the variant.
func (v Variant) Label() string {
	return fmt.Sprintf("version %d UUID", uint8(v))
}

// Valid reports whether v is one of the supported variants.
func (v Variant) Valid() bool {
	switch v {
	case V1, V4, V7:
		return true
	}
	return false
}

// ParseVariant accepts "v4", "V4" or "4" style names.
func ParseVariant(s string) (Variant, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "v")
	switch name {
	case "1":
		return V1, nil
	case "4":
		return V4, nil
	case "7":
		return V7, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Generator produces a fresh identifier for a variant.
type Generator interface {
	Generate(v Variant) string
}

// Registry is the default Generator backed by github.com/google/uuid.
type Registry struct {
	newV1 func() (uuid.UUID, error)
	newV4 func() (uuid.UUID, error)
	newV7 func() (uuid.UUID, error)
}

// New creates a registry wired to the google/uuid constructors.
func New() *Registry {
	return &Registry{
		newV1: uuid.NewUUID,
		newV4: uuid.NewRandom,
		newV7: uuid.NewV7,
	}
}

// Generate returns a new canonical identifier for v.
//
// The constructors only fail when the system entropy source does, which is
// treated the same way uuid.New treats it: as unrecoverable.
func (r *Registry) Generate(v Variant) string {
	var fn func() (uuid.UUID, error)
	switch v {
	case V1:
		fn = r.newV1
	case V4:
		fn = r.newV4
	case V7:
		fn = r.newV7
	default:
		panic(fmt.Sprintf("registry: generate called with %s", v))
	}

	id, err := fn()
	if err != nil {
		panic(fmt.Sprintf("registry: failed to generate %s UUID: %v", v, err))
	}
	return id.String()
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(v Variant) string

// Generate calls f(v).
func (f GeneratorFunc) Generate(v Variant) string {
	return f(v)
}
