package finder

import (
	"errors"
	"strings"
	"testing"

	"github.com/d-kuro/uuidw/internal/registry"
	"github.com/d-kuro/uuidw/pkg/models"
	"github.com/ktr0731/go-fuzzyfinder"
)

func TestNew(t *testing.T) {
	config := &models.FinderConfig{Preview: true}

	finder := New(config)

	if finder == nil {
		t.Fatal("New() returned nil")
	}
	if finder.config != config {
		t.Error("config not set correctly")
	}
	if finder.find == nil {
		t.Error("find should default to fuzzyfinder.Find")
	}
}

func TestSelectIdentifier_EmptyList(t *testing.T) {
	finder := New(&models.FinderConfig{})

	result, err := finder.SelectIdentifier(nil)

	if !errors.Is(err, ErrNoIdentifiers) {
		t.Errorf("Expected ErrNoIdentifiers, got: %v", err)
	}
	if result != "" {
		t.Errorf("Expected empty result, got %q", result)
	}
}

func TestSelectIdentifier(t *testing.T) {
	ids := []string{
		"018e3f5a-2b00-7abc-8def-0123456789ab",
		"018e3f5a-2b01-7abc-8def-0123456789ab",
		"018e3f5a-2b02-7abc-8def-0123456789ab",
	}

	var labels []string
	finder := New(&models.FinderConfig{Preview: true})
	finder.find = func(slice any, itemFunc func(i int) string, opts ...fuzzyfinder.Option) (int, error) {
		for i := range ids {
			labels = append(labels, itemFunc(i))
		}
		if len(opts) != 2 {
			t.Errorf("expected prompt and preview options, got %d", len(opts))
		}
		return 1, nil
	}

	got, err := finder.SelectIdentifier(ids)
	if err != nil {
		t.Fatalf("SelectIdentifier() error = %v", err)
	}
	if got != ids[1] {
		t.Errorf("SelectIdentifier() = %s, want %s", got, ids[1])
	}
	if labels[2] != " 3  "+ids[2] {
		t.Errorf("label = %q", labels[2])
	}
}

func TestSelectIdentifier_NoPreview(t *testing.T) {
	finder := New(&models.FinderConfig{Preview: false})
	finder.find = func(slice any, itemFunc func(i int) string, opts ...fuzzyfinder.Option) (int, error) {
		if len(opts) != 1 {
			t.Errorf("expected only the prompt option, got %d", len(opts))
		}
		return 0, nil
	}

	if _, err := finder.SelectIdentifier([]string{"x"}); err != nil {
		t.Fatalf("SelectIdentifier() error = %v", err)
	}
}

func TestSelectIdentifier_Abort(t *testing.T) {
	finder := New(&models.FinderConfig{})
	finder.find = func(any, func(int) string, ...fuzzyfinder.Option) (int, error) {
		return -1, fuzzyfinder.ErrAbort
	}

	_, err := finder.SelectIdentifier([]string{"x"})
	if !IsAbort(err) {
		t.Errorf("IsAbort(%v) = false", err)
	}
}

func TestGeneratePreview(t *testing.T) {
	t.Run("v7", func(t *testing.T) {
		preview := generatePreview("018e3f5a-2b00-7abc-8def-0123456789ab", 0, 20)
		for _, want := range []string{"Position: 1", "Version: 7", "Timestamp: 2024-03-"} {
			if !strings.Contains(preview, want) {
				t.Errorf("preview missing %q:\n%s", want, preview)
			}
		}
	})

	t.Run("v1", func(t *testing.T) {
		preview := generatePreview(registry.New().Generate(registry.V1), 4, 20)
		for _, want := range []string{"Position: 5", "Version: 1", "Node: "} {
			if !strings.Contains(preview, want) {
				t.Errorf("preview missing %q:\n%s", want, preview)
			}
		}
	})

	t.Run("truncated", func(t *testing.T) {
		preview := generatePreview("018e3f5a-2b00-7abc-8def-0123456789ab", 0, 2)
		if n := len(strings.Split(preview, "\n")); n != 2 {
			t.Errorf("preview has %d lines, want 2", n)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		preview := generatePreview("nope", 0, 10)
		if !strings.Contains(preview, "UUID: nope") {
			t.Errorf("preview = %q", preview)
		}
	})
}
