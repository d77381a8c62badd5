package coil

import (
	"strings"
)

// WireLabel identifies a physical wire by its color name (e.g. "Red", "Bare").
// Labels are opaque: they are compared by equality only and no fixed palette
// is assumed. The empty string means "unknown wire".
type WireLabel string

// BareWire is the unshielded drain/shield conductor. It is always a
// ground-bound wire, never a signal wire.
const BareWire WireLabel = "Bare"

// IsKnown reports whether the label carries a value
func (w WireLabel) IsKnown() bool {
	return w != ""
}

// String returns the string representation
func (w WireLabel) String() string {
	return string(w)
}

// CoilWirePair holds the two wire leads of a single coil. Order matters only
// as the tie-break default when no probe-to-wire mapping was recorded.
type CoilWirePair [2]WireLabel

// NewCoilWirePair creates a pair from two wire labels
func NewCoilWirePair(first, second WireLabel) CoilWirePair {
	return CoilWirePair{first, second}
}

// Complete reports whether both leads are known and distinct. A coil with
// fewer than two known wires cannot be role-inferred.
func (p CoilWirePair) Complete() bool {
	return p[0].IsKnown() && p[1].IsKnown() && p[0] != p[1]
}

// Contains reports whether the given wire is one of the pair's leads
func (p CoilWirePair) Contains(w WireLabel) bool {
	return w.IsKnown() && (p[0] == w || p[1] == w)
}

// Other returns the pair member that is not the given wire, or "" when the
// wire is not part of the pair.
func (p CoilWirePair) Other(w WireLabel) WireLabel {
	switch w {
	case p[0]:
		return p[1]
	case p[1]:
		return p[0]
	}
	return ""
}

// ProbeObservation is the outcome of the pole-piece tap test: the direction
// the resistance reading moved when a metal tool touched the pole piece.
type ProbeObservation string

const (
	// ObservationUnknown means the test was not performed or not recorded
	ObservationUnknown ProbeObservation = ""
	// ObservationNormal means the reading rose during the tap test
	ObservationNormal ProbeObservation = "normal"
	// ObservationReverse means the reading fell during the tap test
	ObservationReverse ProbeObservation = "reverse"
)

// IsNormal reports whether the observation indicates normal phase. An
// unknown observation is treated as not-normal, matching the tie-break
// behavior of the inference rules.
func (o ProbeObservation) IsNormal() bool {
	return o == ObservationNormal
}

// IsKnown reports whether an observation was recorded
func (o ProbeObservation) IsKnown() bool {
	return o != ObservationUnknown
}

// ParseObservation converts free-form probe result text into the closed
// observation enum. This is the single boundary where locale-specific
// vocabulary is interpreted; domain logic only ever sees the enum.
// Recognized: "nousee"/"increase"/"normaali"/"normal" for a rising reading,
// "laskee"/"decrease"/"käänteinen"/"reverse" for a falling one.
func ParseObservation(text string) ProbeObservation {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return ObservationUnknown
	}
	for _, kw := range []string{"nousee", "increase", "normaali", "normal", "rise", "up"} {
		if strings.Contains(t, kw) {
			return ObservationNormal
		}
	}
	for _, kw := range []string{"laskee", "decrease", "käänte", "reverse", "fall", "drop", "down"} {
		if strings.Contains(t, kw) {
			return ObservationReverse
		}
	}
	return ObservationUnknown
}

// ProbeLeads records which wire each multimeter lead touched during the tap
// test. Either field may be empty when the hobbyist did not note it.
type ProbeLeads struct {
	Red   WireLabel `json:"red"`
	Black WireLabel `json:"black"`
}

// CoilRoles is the result of start/finish inference for one coil. Empty
// fields mean the inputs were insufficient to decide; callers must treat
// that as "cannot give a confident answer", never as an error.
type CoilRoles struct {
	Start  WireLabel `json:"start"`
	Finish WireLabel `json:"finish"`
}

// Resolved reports whether both roles were determined
func (r CoilRoles) Resolved() bool {
	return r.Start.IsKnown() && r.Finish.IsKnown()
}

// Swapped returns the roles with start and finish exchanged
func (r CoilRoles) Swapped() CoilRoles {
	return CoilRoles{Start: r.Finish, Finish: r.Start}
}

// Sign marks a wire's electrical polarity under the probe sign convention
type Sign string

const (
	SignUnknown  Sign = ""
	SignPositive Sign = "+"
	SignNegative Sign = "-"
)

// CoilPolarity is the result of electrical polarity inference for one coil.
// At most one of start/finish carries SignPositive; when PositiveWire is
// unknown the non-empty roles default to SignNegative (no strong signal is
// equivalent to "not proven positive").
type CoilPolarity struct {
	PositiveWire WireLabel `json:"positive_wire"`
	Start        WireLabel `json:"start"`
	Finish       WireLabel `json:"finish"`
	StartSign    Sign      `json:"start_sign"`
	FinishSign   Sign      `json:"finish_sign"`
}
