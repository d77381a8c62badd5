package detect

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats/scalar"

	"coilmap/domain/coil"
	"coilmap/domain/wiring"
)

// Resistance window for a plausible pickup winding. Readings below it are
// continuity/shorts, above it broken windings or open circuits.
const (
	minCoilOhms = 10.0
	maxCoilOhms = 20000.0
)

// seriesRelTolerance is the relative slack allowed when checking that an
// outer-lead reading equals the sum of two coil readings.
const seriesRelTolerance = 0.25

type wirePair struct {
	a, b coil.WireLabel
}

// parse normalizes the measurement keys into symmetric tuple lookups and
// collects the distinct wire labels.
func parse(m Measurements) ([]coil.WireLabel, map[wirePair]float64) {
	pairs := make(map[wirePair]float64)
	seen := make(map[coil.WireLabel]bool)
	var wires []coil.WireLabel

	for key, ohms := range m {
		parts := strings.SplitN(key, "-", 2)
		if len(parts) != 2 {
			continue
		}
		a := coil.WireLabel(strings.TrimSpace(parts[0]))
		b := coil.WireLabel(strings.TrimSpace(parts[1]))
		if !a.IsKnown() || !b.IsKnown() {
			continue
		}
		for _, w := range []coil.WireLabel{a, b} {
			if !seen[w] {
				seen[w] = true
				wires = append(wires, w)
			}
		}
		pairs[wirePair{a, b}] = ohms
		pairs[wirePair{b, a}] = ohms
	}
	return wires, pairs
}

// FindCoilPairs locates the likely winding pairs in a measurement matrix.
// Candidates are walked in ascending resistance order and accepted greedily
// when the reading falls inside the plausible coil window and neither wire
// is already claimed by an earlier pair.
func FindCoilPairs(m Measurements) []CoilPairMatch {
	wires, pairs := parse(m)

	var cand []CoilPairMatch
	visited := make(map[wirePair]bool)
	for _, a := range wires {
		for _, b := range wires {
			if a == b || visited[wirePair{a, b}] || visited[wirePair{b, a}] {
				continue
			}
			visited[wirePair{a, b}] = true
			if ohms, ok := pairs[wirePair{a, b}]; ok && !math.IsNaN(ohms) {
				cand = append(cand, CoilPairMatch{A: a, B: b, Resistance: ohms})
			}
		}
	}
	sort.Slice(cand, func(i, j int) bool { return cand[i].Resistance < cand[j].Resistance })

	var chosen []CoilPairMatch
	used := make(map[coil.WireLabel]bool)
	for _, c := range cand {
		if used[c.A] || used[c.B] {
			continue
		}
		if c.Resistance >= minCoilOhms && c.Resistance <= maxCoilOhms {
			chosen = append(chosen, c)
			used[c.A] = true
			used[c.B] = true
		}
	}
	return chosen
}

// DetectCenterTap looks for a coil-end wire with continuity-level
// resistance (below the winding window) to a wire of the other coil. Such a
// link marks the shared junction of a tapped or center-tapped winding.
// Returns the empty label when no candidate stands out.
func DetectCenterTap(m Measurements, found []CoilPairMatch) coil.WireLabel {
	_, pairs := parse(m)
	if len(found) < 2 {
		return ""
	}

	first := []coil.WireLabel{found[0].A, found[0].B}
	second := []coil.WireLabel{found[1].A, found[1].B}
	for _, w := range first {
		for _, x := range second {
			ohms, ok := pairs[wirePair{w, x}]
			if ok && !math.IsInf(ohms, 0) && ohms < minCoilOhms {
				return w
			}
		}
	}
	return ""
}

// SummarizeCoils reports the resistances of the first two discovered pairs
// together with their series and parallel combinations
func SummarizeCoils(found []CoilPairMatch) wiring.ResistanceResult {
	var r1, r2 *float64
	if len(found) >= 1 {
		v := found[0].Resistance
		r1 = &v
	}
	if len(found) >= 2 {
		v := found[1].Resistance
		r2 = &v
	}
	return wiring.SummarizeResistance(r1, r2)
}

// ConfirmSeriesReading checks whether a reading taken across the outer
// leads agrees with the sum of the two coil readings, within tolerance.
// Agreement is strong evidence the two pairs belong to one humbucker.
func ConfirmSeriesReading(outerOhms float64, found []CoilPairMatch) bool {
	if len(found) < 2 {
		return false
	}
	sum := found[0].Resistance + found[1].Resistance
	return scalar.EqualWithinAbsOrRel(outerOhms, sum, minCoilOhms, seriesRelTolerance)
}

// SmoothReadings collapses repeated multimeter readings of one coil into a
// single value using the median, which shrugs off the settling drift and
// contact glitches typical of hand-held probes. Returns nil when no usable
// samples remain.
func SmoothReadings(samples []float64) *float64 {
	clean := make([]float64, 0, len(samples))
	for _, s := range samples {
		if !math.IsNaN(s) && !math.IsInf(s, 0) {
			clean = append(clean, s)
		}
	}
	if len(clean) == 0 {
		return nil
	}
	median, err := stats.Median(clean)
	if err != nil {
		return nil
	}
	return &median
}

// Analyze runs the full discovery pass over a measurement matrix
func Analyze(m Measurements) Result {
	found := FindCoilPairs(m)
	tap := DetectCenterTap(m, found)
	return Result{
		Pairs:       found,
		CenterTap:   tap,
		Resistances: SummarizeCoils(found),
		Plan:        BuildConnectionPlan(found, tap),
	}
}

// BuildConnectionPlan renders a prose explanation, ASCII diagram and
// suggestions for the discovered pairs
func BuildConnectionPlan(found []CoilPairMatch, centerTap coil.WireLabel) ConnectionPlan {
	var explanation, diagram, suggestions []string

	explanation = append(explanation, "Detected coil pairs:")
	for _, p := range found {
		explanation = append(explanation, fmt.Sprintf(" - %s <--> %s  (measured %.1f Ω)", p.A, p.B, p.Resistance))
	}
	if centerTap.IsKnown() {
		explanation = append(explanation, fmt.Sprintf("Probable center tap: %s", centerTap))
		suggestions = append(suggestions, "Center tap present: check the manufacturer diagram before soldering a split or tap circuit.")
	} else {
		explanation = append(explanation, "No center tap detected.")
	}
	explanation = append(explanation,
		"Phase check: if combining two pickups sounds thin or hollow, swap one pickup's hot and ground or reverse one coil's wire pair.")

	diagram = append(diagram, "Suggested connection (hot -> tip, ground -> sleeve):")
	if len(found) >= 2 {
		c1, c2 := found[0], found[1]
		diagram = append(diagram,
			fmt.Sprintf(" Coil1: (%s)--->[windings]--->(%s)", c1.A, c1.B),
			fmt.Sprintf(" Coil2: (%s)--->[windings]--->(%s)", c2.A, c2.B),
			"",
			// convention: hot = coil1 start, ground = coil2 finish
			fmt.Sprintf(" -> HOT (signal)        --> %s", c1.A),
			fmt.Sprintf(" -> GND (to pot casing) --> %s", c2.B),
		)
		if centerTap.IsKnown() {
			diagram = append(diagram, fmt.Sprintf(" Center tap: %s (usable for split or tap wiring)", centerTap))
		}
	} else {
		diagram = append(diagram, " Not enough coil pairs for a detailed diagram.")
	}

	return ConnectionPlan{
		Explanation: strings.Join(explanation, "\n"),
		Diagram:     strings.Join(diagram, "\n"),
		Suggestions: strings.Join(suggestions, "\n"),
	}
}
