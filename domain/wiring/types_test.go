package wiring

import (
	"testing"

	"coilmap/domain/coil"
)

func TestPhaseFromObservation(t *testing.T) {
	if PhaseFromObservation(coil.ObservationNormal) != PhaseNormal {
		t.Error("normal observation should map to normal phase")
	}
	if PhaseFromObservation(coil.ObservationReverse) != PhaseReverse {
		t.Error("reverse observation should map to reverse phase")
	}
	// unrecorded observations share the reverse tie-break with role inference
	if PhaseFromObservation(coil.ObservationUnknown) != PhaseReverse {
		t.Error("unknown observation should map to reverse phase")
	}
}

func TestParseMagneticPolarity(t *testing.T) {
	cases := map[string]MagneticPolarity{
		"north":     MagneticNorth,
		" North ":   MagneticNorth,
		"S":         MagneticSouth,
		"etelä":     MagneticSouth,
		"sideways":  "",
		"":          "",
		"pohjoinen": MagneticNorth,
	}
	for in, want := range cases {
		if got := ParseMagneticPolarity(in); got != want {
			t.Errorf("ParseMagneticPolarity(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWiringModeIsKnown(t *testing.T) {
	for _, m := range KnownModes() {
		if !m.IsKnown() {
			t.Errorf("mode %s should be known", m)
		}
	}
	if WiringMode("out-of-phase").IsKnown() {
		t.Error("unlisted mode should not be known")
	}
}
