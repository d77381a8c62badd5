package app

import (
	"errors"
	"strings"
	"testing"

	"coilmap/domain/core"
	"coilmap/domain/wiring"
	"coilmap/models"
)

func TestGuideForMode(t *testing.T) {
	guide := NewSolderingGuide()

	for _, mode := range wiring.KnownModes() {
		text, err := guide.ForMode(mode)
		if err != nil {
			t.Fatalf("ForMode(%s) failed: %v", mode, err)
		}
		if !strings.HasPrefix(text, "# ") {
			t.Errorf("ForMode(%s) should start with a heading", mode)
		}
		if !strings.Contains(text, "1. ") {
			t.Errorf("ForMode(%s) should contain numbered steps", mode)
		}
	}
}

func TestGuideForMode_Unknown(t *testing.T) {
	_, err := NewSolderingGuide().ForMode("out-of-phase")
	if !errors.Is(err, core.ErrUnknownWiringMode) {
		t.Errorf("expected unknown-mode error, got %v", err)
	}
}

func TestGuideForAnalysis_NamesWires(t *testing.T) {
	svc := newTestService()
	analysis, err := svc.AnalyzePickup(models.PickupInput{
		Slug:              models.CoilInput{Wires: []string{"Red", "White"}, RedLead: "Red", Observation: "normal"},
		Screw:             models.CoilInput{Wires: []string{"Green", "Black"}, RedLead: "Green", Observation: "reverse"},
		GroundWirePresent: true,
		Mode:              "series",
	})
	if err != nil {
		t.Fatalf("AnalyzePickup failed: %v", err)
	}

	text, err := NewSolderingGuide().ForAnalysis(analysis)
	if err != nil {
		t.Fatalf("ForAnalysis failed: %v", err)
	}
	for _, wire := range []string{"Red", "White", "Green", "Black"} {
		if !strings.Contains(text, wire) {
			t.Errorf("guide should mention wire %s:\n%s", wire, text)
		}
	}
}
