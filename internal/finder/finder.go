// Package finder provides fuzzy finder integration for the uuidw application.
package finder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/d-kuro/uuidw/internal/registry"
	"github.com/d-kuro/uuidw/pkg/models"
	"github.com/ktr0731/go-fuzzyfinder"
)

// ErrNoIdentifiers is returned when there is nothing to select from.
var ErrNoIdentifiers = errors.New("no identifiers available")

// Finder provides fuzzy finder functionality.
type Finder struct {
	config *models.FinderConfig
	find   func(slice any, itemFunc func(i int) string, opts ...fuzzyfinder.Option) (int, error)
}

// New creates a new Finder instance.
func New(config *models.FinderConfig) *Finder {
	return &Finder{
		config: config,
		find:   fuzzyfinder.Find,
	}
}

// SelectIdentifier displays a fuzzy finder over a bulk batch.
func (f *Finder) SelectIdentifier(ids []string) (string, error) {
	if len(ids) == 0 {
		return "", ErrNoIdentifiers
	}

	opts := []fuzzyfinder.Option{
		fuzzyfinder.WithPromptString("Select UUID> "),
	}

	if f.config.Preview {
		opts = append(opts, fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return generatePreview(ids[i], i, h)
		}))
	}

	idx, err := f.find(
		ids,
		func(i int) string {
			return fmt.Sprintf("%2d  %s", i+1, ids[i])
		},
		opts...,
	)
	if err != nil {
		return "", err
	}

	return ids[idx], nil
}

// IsAbort reports whether err means the user closed the finder.
func IsAbort(err error) bool {
	return errors.Is(err, fuzzyfinder.ErrAbort)
}

// generatePreview generates preview content for an identifier.
func generatePreview(id string, index, maxLines int) string {
	info, err := registry.Inspect(id)
	if err != nil {
		return fmt.Sprintf("UUID: %s\n%v", id, err)
	}

	preview := []string{
		fmt.Sprintf("UUID: %s", id),
		fmt.Sprintf("Position: %d", index+1),
		fmt.Sprintf("Version: %d", info.Version),
		fmt.Sprintf("Layout: %s", info.Layout),
	}
	if info.HasTime {
		preview = append(preview, fmt.Sprintf("Timestamp: %s", info.Time.Format(time.RFC3339Nano)))
	}
	if info.HasNodeID {
		preview = append(preview,
			fmt.Sprintf("Clock sequence: %d", info.ClockSeq),
			fmt.Sprintf("Node: %s", info.Node),
		)
	}

	if maxLines > 0 && len(preview) > maxLines {
		preview = preview[:maxLines]
	}
	return strings.Join(preview, "\n")
}
