package coil

import (
	"testing"
)

func TestParseObservation(t *testing.T) {
	cases := []struct {
		text string
		want ProbeObservation
	}{
		{"Nousee (normaali)", ObservationNormal},
		{"resistance increase", ObservationNormal},
		{"Normal Phase", ObservationNormal},
		{"Laskee (käänteinen)", ObservationReverse},
		{"Reverse Phase", ObservationReverse},
		{"reading dropped", ObservationReverse},
		{"", ObservationUnknown},
		{"   ", ObservationUnknown},
		{"no idea", ObservationUnknown},
	}
	for _, c := range cases {
		if got := ParseObservation(c.text); got != c.want {
			t.Errorf("ParseObservation(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestCoilWirePair_Other(t *testing.T) {
	pair := NewCoilWirePair("Red", "White")
	if got := pair.Other("Red"); got != "White" {
		t.Errorf("Other(Red) = %s, want White", got)
	}
	if got := pair.Other("White"); got != "Red" {
		t.Errorf("Other(White) = %s, want Red", got)
	}
	if got := pair.Other("Green"); got.IsKnown() {
		t.Errorf("Other(Green) = %s, want unknown", got)
	}
}

func TestCoilWirePair_Complete(t *testing.T) {
	if !NewCoilWirePair("Red", "White").Complete() {
		t.Error("distinct pair should be complete")
	}
	if NewCoilWirePair("Red", "Red").Complete() {
		t.Error("duplicate labels are not a valid pair")
	}
	if NewCoilWirePair("Red", "").Complete() {
		t.Error("pair with one known wire is not complete")
	}
}
