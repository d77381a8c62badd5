package coil

// InferRoles determines which of a coil's two wires is the winding start and
// which the finish, from the tap-test observation and the (possibly partial)
// record of which multimeter lead touched which wire.
//
// Branches are tried in priority order; the first usable one wins:
//  1. both leads recorded and in the pair: NORMAL puts the start on the red
//     lead's wire, REVERSE on the black lead's wire
//  2. only the red lead recorded: NORMAL selects it as start, otherwise the
//     pair's other wire
//  3. only the black lead recorded: inverted relative to (2) — the black lead
//     is the measurement's return path, so NORMAL selects the other wire
//  4. no usable lead mapping: fall back to pair order, first wire on NORMAL
//
// manualSwap inverts the outcome, for when the hobbyist has empirically
// established the inference is backwards (e.g. a failed hum-cancel test)
// without re-entering probe data. Missing inputs degrade to empty fields;
// this function never fails.
func InferRoles(pair CoilWirePair, leads ProbeLeads, obs ProbeObservation, manualSwap bool) CoilRoles {
	if !pair.Complete() {
		return CoilRoles{}
	}

	redUsable := pair.Contains(leads.Red)
	blackUsable := pair.Contains(leads.Black)

	var start WireLabel
	switch {
	case redUsable && blackUsable:
		if obs.IsNormal() {
			start = leads.Red
		} else {
			start = leads.Black
		}
	case redUsable:
		if obs.IsNormal() {
			start = leads.Red
		} else {
			start = pair.Other(leads.Red)
		}
	case blackUsable:
		if obs.IsNormal() {
			start = pair.Other(leads.Black)
		} else {
			start = leads.Black
		}
	default:
		if obs.IsNormal() {
			start = pair[0]
		} else {
			start = pair[1]
		}
	}

	roles := CoilRoles{Start: start, Finish: pair.Other(start)}
	if manualSwap {
		roles = roles.Swapped()
	}
	return roles
}

// InferPolarity determines which wire behaves electrically positive under
// the tap test, alongside the start/finish roles from InferRoles. The
// positive-wire rule is stricter than role inference: with a single recorded
// lead, only the direction that implicates that lead yields a verdict
// (red+NORMAL or black+REVERSE); the opposite direction stays indeterminate
// rather than guessing.
//
// The result lets callers cross-check that the wire chosen as START agrees
// with the electrically positive wire, and offer a manual-swap fix when the
// two disagree.
func InferPolarity(pair CoilWirePair, leads ProbeLeads, obs ProbeObservation, manualSwap bool) CoilPolarity {
	if !pair.Complete() {
		return CoilPolarity{}
	}

	roles := InferRoles(pair, leads, obs, manualSwap)

	redUsable := pair.Contains(leads.Red)
	blackUsable := pair.Contains(leads.Black)

	var positive WireLabel
	if obs.IsKnown() {
		switch {
		case redUsable && blackUsable:
			if obs.IsNormal() {
				positive = leads.Red
			} else {
				positive = leads.Black
			}
		case redUsable:
			if obs.IsNormal() {
				positive = leads.Red
			}
		case blackUsable:
			if !obs.IsNormal() {
				positive = leads.Black
			}
		}
	}

	p := CoilPolarity{
		PositiveWire: positive,
		Start:        roles.Start,
		Finish:       roles.Finish,
	}

	switch {
	case !positive.IsKnown():
		// default minus: no strong signal means "not proven positive"
		if p.Start.IsKnown() {
			p.StartSign = SignNegative
		}
		if p.Finish.IsKnown() {
			p.FinishSign = SignNegative
		}
	case positive == p.Start:
		p.StartSign = SignPositive
		p.FinishSign = SignNegative
	case positive == p.Finish:
		p.StartSign = SignNegative
		p.FinishSign = SignPositive
	default:
		// positive wire known but matches neither role; should not happen
		// with shared inputs, leave both signs unknown rather than guess
	}

	return p
}
