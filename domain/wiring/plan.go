package wiring

import (
	"coilmap/domain/coil"
)

// BuildPlan derives the hot/series-link/ground wire assignment for a pickup.
// coilA is the physically upper/slug coil, coilB the lower/screw coil; the
// caller keeps that assignment consistent for a given pickup.
//
// Series topology depends on the phase relationship: coils on opposite
// phases (true RWRP) join finish-to-finish, while coils sharing a phase join
// finish-to-start to restore the series current path. Unresolved roles are
// dropped from the lists. An unknown mode yields an empty plan with an
// explanatory note; no input combination fails.
func BuildPlan(coilA, coilB coil.CoilRoles, mode WiringMode, groundWirePresent bool, phaseA, phaseB PhaseFlag) WiringPlan {
	plan := WiringPlan{
		Output: []coil.WireLabel{},
		Series: []coil.WireLabel{},
		Ground: []coil.WireLabel{},
	}

	switch mode {
	case ModeSeries:
		plan.Output = known(coilA.Start)
		if phaseA != phaseB {
			plan.Series = known(coilA.Finish, coilB.Finish)
			plan.Ground = known(coilB.Start)
		} else {
			plan.Series = known(coilA.Finish, coilB.Start)
			plan.Ground = known(coilB.Finish)
		}

	case ModeParallel:
		plan.Output = known(coilA.Start, coilB.Start)
		plan.Ground = known(coilA.Finish, coilB.Finish)

	case ModeSlugOnly:
		// the unused coil's wires are grounded to silence it while it
		// stays connected
		plan.Output = known(coilA.Start)
		plan.Ground = known(coilA.Finish, coilB.Start, coilB.Finish)

	case ModeScrewOnly:
		plan.Output = known(coilB.Start)
		plan.Ground = known(coilA.Start, coilA.Finish, coilB.Finish)

	default:
		plan.Notes = "Unknown wiring variant requested."
		return plan
	}

	if groundWirePresent {
		plan.Ground = append(plan.Ground, coil.BareWire)
	}
	return plan
}

// known filters a wire list down to the labels that carry a value
func known(wires ...coil.WireLabel) []coil.WireLabel {
	out := make([]coil.WireLabel, 0, len(wires))
	for _, w := range wires {
		if w.IsKnown() {
			out = append(out, w)
		}
	}
	return out
}
