package wiring

import (
	"strings"

	"coilmap/domain/coil"
)

// WiringMode selects how the two coils of a humbucker are combined.
// The set is closed; anything else is an unknown variant.
type WiringMode string

const (
	// ModeSeries chains both coils, the standard full-output humbucker wiring
	ModeSeries WiringMode = "series"
	// ModeParallel ties both coil starts to the output
	ModeParallel WiringMode = "parallel"
	// ModeSlugOnly uses only the upper/slug coil (coil A)
	ModeSlugOnly WiringMode = "slug_only"
	// ModeScrewOnly uses only the lower/screw coil (coil B)
	ModeScrewOnly WiringMode = "screw_only"
)

// KnownModes lists every supported wiring mode
func KnownModes() []WiringMode {
	return []WiringMode{ModeSeries, ModeParallel, ModeSlugOnly, ModeScrewOnly}
}

// IsKnown reports whether the mode is part of the closed set
func (m WiringMode) IsKnown() bool {
	switch m {
	case ModeSeries, ModeParallel, ModeSlugOnly, ModeScrewOnly:
		return true
	}
	return false
}

// PhaseFlag is a coil's electrical phase as established by the tap test
type PhaseFlag string

const (
	PhaseNormal  PhaseFlag = "normal"
	PhaseReverse PhaseFlag = "reverse"
)

// PhaseFromObservation collapses a probe observation into a phase flag.
// An unrecorded observation counts as reverse, the same tie-break the role
// inference applies.
func PhaseFromObservation(obs coil.ProbeObservation) PhaseFlag {
	if obs.IsNormal() {
		return PhaseNormal
	}
	return PhaseReverse
}

// WiringPlan assigns each known wire to the hot path, the internal series
// join, or ground. Lists hold only known wires: an unresolved coil role is
// dropped, never inserted as a placeholder, so callers detect missing data
// by list length.
type WiringPlan struct {
	Output []coil.WireLabel `json:"output"`
	Series []coil.WireLabel `json:"series"`
	Ground []coil.WireLabel `json:"ground"`
	Notes  string           `json:"notes,omitempty"`
}

// Wires returns every wire named anywhere in the plan, in list order
func (p WiringPlan) Wires() []coil.WireLabel {
	all := make([]coil.WireLabel, 0, len(p.Output)+len(p.Series)+len(p.Ground))
	all = append(all, p.Output...)
	all = append(all, p.Series...)
	all = append(all, p.Ground...)
	return all
}

// HumCancelReport states whether a pickup's internal wiring will cancel hum
type HumCancelReport struct {
	Cancels bool   `json:"cancels"`
	Message string `json:"message"`
}

// MagneticPolarity is the pole orientation of one coil's magnets
type MagneticPolarity string

const (
	MagneticNorth MagneticPolarity = "North"
	MagneticSouth MagneticPolarity = "South"
)

// ParseMagneticPolarity normalizes free-form compass-test text. Unrecognized
// text yields the empty value.
func ParseMagneticPolarity(text string) MagneticPolarity {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "north", "n", "pohjoinen":
		return MagneticNorth
	case "south", "s", "etelä":
		return MagneticSouth
	}
	return ""
}

// Relation describes how two coil properties compare
type Relation string

const (
	RelationSame     Relation = "Same"
	RelationOpposite Relation = "Opposite"
)

// OutputStrength grades the combined signal level of two coils
type OutputStrength string

const (
	OutputStrong OutputStrength = "Strong"
	OutputWeak   OutputStrength = "Weak"
)

// MagneticReport combines magnetic polarity and winding direction into an
// output-strength and hum-cancellation verdict
type MagneticReport struct {
	MagneticRelation Relation       `json:"magnetic_relation"`
	WindingRelation  Relation       `json:"windings_relation"`
	OutputStrength   OutputStrength `json:"output_strength"`
	HumCancels       bool           `json:"hum_cancel"`
}

// ResistanceResult summarizes coil resistances and their combined values.
// Nil fields mean the underlying measurement is missing.
type ResistanceResult struct {
	R1       *float64 `json:"r1"`
	R2       *float64 `json:"r2"`
	Series   *float64 `json:"series"`
	Parallel *float64 `json:"parallel"`
}
