package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/d-kuro/uuidw/internal/registry"
	"github.com/d-kuro/uuidw/pkg/models"
	"gopkg.in/yaml.v3"
)

var sampleIDs = []models.Identifier{
	{
		Value:     "018e3f5a-2b00-7abc-8def-0123456789ab",
		Variant:   "v7",
		Timestamp: time.UnixMilli(0x018e3f5a2b00).UTC(),
	},
	{
		Value:   "0b5e9f6a-3c1d-4e2f-8a7b-6c5d4e3f2a1b",
		Variant: "v4",
	},
}

func newTestPrinter(cfg *models.UIConfig) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	p := New(cfg)
	p.SetOutput(&out, &errOut)
	return p, &out, &errOut
}

func TestNewPrinter(t *testing.T) {
	tests := []struct {
		name   string
		config *models.UIConfig
	}{
		{name: "WithIcons", config: &models.UIConfig{Icons: true, Color: true}},
		{name: "WithoutIcons", config: &models.UIConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.config)
			if p.useIcons != tt.config.Icons {
				t.Errorf("useIcons = %v, want %v", p.useIcons, tt.config.Icons)
			}
			if p.useColor != tt.config.Color {
				t.Errorf("useColor = %v, want %v", p.useColor, tt.config.Color)
			}
		})
	}
}

func TestPrintIdentifiersText(t *testing.T) {
	p, out, _ := newTestPrinter(&models.UIConfig{})

	if err := p.PrintIdentifiers(sampleIDs, FormatText); err != nil {
		t.Fatalf("PrintIdentifiers() error = %v", err)
	}

	want := sampleIDs[0].Value + "\n" + sampleIDs[1].Value + "\n"
	if out.String() != want {
		t.Errorf("text output = %q, want %q", out.String(), want)
	}
}

func TestPrintIdentifiersTable(t *testing.T) {
	p, out, _ := newTestPrinter(&models.UIConfig{})

	if err := p.PrintIdentifiers(sampleIDs, FormatTable); err != nil {
		t.Fatalf("PrintIdentifiers() error = %v", err)
	}

	output := out.String()
	for _, want := range []string{"UUID", "VERSION", sampleIDs[0].Value, sampleIDs[1].Value, "2024-03-"} {
		if !strings.Contains(output, want) {
			t.Errorf("table output missing %q:\n%s", want, output)
		}
	}
}

func TestPrintIdentifiersCSV(t *testing.T) {
	p, out, _ := newTestPrinter(&models.UIConfig{})

	if err := p.PrintIdentifiers(sampleIDs, FormatCSV); err != nil {
		t.Fatalf("PrintIdentifiers() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv output has %d lines, want 3:\n%s", len(lines), out.String())
	}
	if lines[0] != "#,UUID,VERSION,TIMESTAMP" {
		t.Errorf("csv header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "2,"+sampleIDs[1].Value+",v4,-") {
		t.Errorf("csv row = %q", lines[2])
	}
}

func TestPrintIdentifiersJSON(t *testing.T) {
	p, out, _ := newTestPrinter(&models.UIConfig{})

	if err := p.PrintIdentifiers(sampleIDs, FormatJSON); err != nil {
		t.Fatalf("PrintIdentifiers() error = %v", err)
	}

	if strings.Count(out.String(), `"timestamp"`) != 1 {
		t.Errorf("zero timestamp should be omitted from json:\n%s", out.String())
	}
	if strings.Contains(out.String(), "0001-01-01") {
		t.Errorf("json carries a zero time:\n%s", out.String())
	}

	var decoded []models.Identifier
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(decoded) != 2 || decoded[0].Variant != "v7" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestPrintIdentifiersYAML(t *testing.T) {
	p, out, _ := newTestPrinter(&models.UIConfig{})

	if err := p.PrintIdentifiers(sampleIDs, FormatYAML); err != nil {
		t.Fatalf("PrintIdentifiers() error = %v", err)
	}

	if strings.Count(out.String(), "timestamp:") != 1 {
		t.Errorf("zero timestamp should be omitted from yaml:\n%s", out.String())
	}

	var decoded []models.Identifier
	if err := yaml.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if len(decoded) != 2 || decoded[1].Value != sampleIDs[1].Value {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestPrintIdentifiersUnknownFormat(t *testing.T) {
	p, _, _ := newTestPrinter(&models.UIConfig{})
	if err := p.PrintIdentifiers(sampleIDs, "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestValidFormat(t *testing.T) {
	for _, f := range Formats {
		if !ValidFormat(f) {
			t.Errorf("ValidFormat(%q) = false", f)
		}
	}
	if ValidFormat("xml") {
		t.Error("ValidFormat(\"xml\") = true")
	}
}

func TestPrintInspect(t *testing.T) {
	p, out, _ := newTestPrinter(&models.UIConfig{})

	id := registry.New().Generate(registry.V1)
	info, err := registry.Inspect(id)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	p.PrintInspect(id, info)

	output := out.String()
	for _, want := range []string{id, "Version:", "1", "RFC4122", "Timestamp:", "Node:"} {
		if !strings.Contains(output, want) {
			t.Errorf("inspect output missing %q:\n%s", want, output)
		}
	}
}

func TestPrintConfig(t *testing.T) {
	p, out, _ := newTestPrinter(&models.UIConfig{})

	p.PrintConfig(map[string]any{
		"ui":        map[string]any{"color": true, "icons": false},
		"workspace": map[string]any{"default_variant": "v4"},
	})

	want := "ui.color = true\nui.icons = false\nworkspace.default_variant = v4\n"
	if out.String() != want {
		t.Errorf("PrintConfig() = %q, want %q", out.String(), want)
	}
}

func TestPrintMessages(t *testing.T) {
	p, out, errOut := newTestPrinter(&models.UIConfig{Icons: true})

	p.PrintError(errors.New("boom"))
	p.PrintSuccess("Copied to clipboard")

	if out.Len() != 0 {
		t.Errorf("messages should not go to stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Error: boom") {
		t.Errorf("missing error message: %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "✔ Copied to clipboard") {
		t.Errorf("missing success message: %q", errOut.String())
	}
}
