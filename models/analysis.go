package models

import (
	"coilmap/domain/coil"
	"coilmap/domain/wiring"
)

// CoilInput carries everything a hobbyist recorded about one coil. Probe
// observation text stays free-form here; it is parsed into the closed enum
// exactly once, on the way into the analysis service.
type CoilInput struct {
	Wires       []string  `json:"wires"`
	RedLead     string    `json:"red_lead,omitempty"`
	BlackLead   string    `json:"black_lead,omitempty"`
	Observation string    `json:"observation,omitempty"`
	ManualSwap  bool      `json:"manual_swap,omitempty"`
	Readings    []float64 `json:"readings_kohm,omitempty"`
}

// PickupInput is the full measurement record for one pickup. Slug is the
// physically upper coil, Screw the lower one; the caller keeps that
// assignment consistent for a given pickup.
type PickupInput struct {
	Name              string    `json:"name,omitempty"`
	Slug              CoilInput `json:"slug"`
	Screw             CoilInput `json:"screw"`
	GroundWirePresent bool      `json:"ground_wire_present"`
	Mode              string    `json:"mode"`

	// optional compass-tested magnet orientations, e.g. "north"/"south"
	SlugMagnet  string `json:"slug_magnet,omitempty"`
	ScrewMagnet string `json:"screw_magnet,omitempty"`
}

// CoilAnalysis is the per-coil half of an analysis response
type CoilAnalysis struct {
	Roles             coil.CoilRoles    `json:"roles"`
	Polarity          coil.CoilPolarity `json:"polarity"`
	Phase             wiring.PhaseFlag  `json:"phase"`
	ResistanceKOhm    *float64          `json:"resistance_kohm"`
	PolarityConflict  bool              `json:"polarity_conflict"`
	SuggestManualSwap bool              `json:"suggest_manual_swap"`
}

// PickupAnalysis is the complete computed result for one pickup
type PickupAnalysis struct {
	Name        string                  `json:"name,omitempty"`
	Mode        wiring.WiringMode       `json:"mode"`
	Slug        CoilAnalysis            `json:"slug"`
	Screw       CoilAnalysis            `json:"screw"`
	Plan        wiring.WiringPlan       `json:"plan"`
	Equivalent  *float64                `json:"equivalent_kohm"`
	Resistances wiring.ResistanceResult `json:"resistances"`
	HumCancel   wiring.HumCancelReport  `json:"hum_cancel"`
	Magnetics   *wiring.MagneticReport  `json:"magnetics,omitempty"`
}
