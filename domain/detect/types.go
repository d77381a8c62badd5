// Package detect identifies coil pairs and center taps from a raw
// wire-to-wire resistance matrix, before any probe testing has happened.
// It answers "which two of these five wires belong to the same winding"
// so the role inference in domain/coil has pairs to work with.
package detect

import (
	"coilmap/domain/coil"
	"coilmap/domain/wiring"
)

// Measurements maps a wire pair, keyed "A-B", to the resistance in ohms
// read across those two wires. Keys are symmetric: "A-B" and "B-A" mean the
// same measurement.
type Measurements map[string]float64

// CoilPairMatch is one discovered winding: two wire ends and the resistance
// measured across them
type CoilPairMatch struct {
	A          coil.WireLabel `json:"a"`
	B          coil.WireLabel `json:"b"`
	Resistance float64        `json:"resistance"`
}

// Pair returns the match as a coil wire pair
func (m CoilPairMatch) Pair() coil.CoilWirePair {
	return coil.NewCoilWirePair(m.A, m.B)
}

// Result bundles everything discovered from one measurement matrix.
// SeriesConfirmed is set only when the caller supplied an outer-lead
// reading to check against the discovered pairs.
type Result struct {
	Pairs           []CoilPairMatch         `json:"pairs"`
	CenterTap       coil.WireLabel          `json:"center_tap,omitempty"`
	Resistances     wiring.ResistanceResult `json:"resistances"`
	Plan            ConnectionPlan          `json:"plan"`
	SeriesConfirmed *bool                   `json:"series_confirmed,omitempty"`
}

// ConnectionPlan is the human-readable wiring suggestion derived from
// discovered pairs: prose explanation, an ASCII diagram, and caveats
type ConnectionPlan struct {
	Explanation string `json:"explanation"`
	Diagram     string `json:"ascii_diagram"`
	Suggestions string `json:"suggestions"`
}
