package wiring

import (
	"errors"
	"testing"

	"coilmap/domain/core"
)

func TestColorPresets(t *testing.T) {
	presets := ColorPresets()
	if len(presets) == 0 {
		t.Fatal("expected built-in presets")
	}
	for _, p := range presets {
		if p.Name == "" {
			t.Error("preset without a name")
		}
		if !p.SlugPair().Complete() || !p.ScrewPair().Complete() {
			t.Errorf("preset %s has incomplete coil pairs", p.Name)
		}
	}
}

func TestColorPresetByName(t *testing.T) {
	p, err := ColorPresetByName("bare knuckle")
	if err != nil {
		t.Fatalf("lookup should be case-insensitive: %v", err)
	}
	if p.Name != "Bare Knuckle" {
		t.Errorf("wrong preset: %s", p.Name)
	}

	_, err = ColorPresetByName("no such maker")
	if !errors.Is(err, core.ErrPresetNotFound) {
		t.Errorf("expected preset-not-found, got %v", err)
	}
}
