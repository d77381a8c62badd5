package app

import (
	"fmt"
	"strings"

	"coilmap/domain/coil"
	"coilmap/domain/core"
	"coilmap/domain/wiring"
	"coilmap/models"
)

// SolderingGuide renders step-by-step soldering instructions as Markdown.
// The generic guides describe each wiring variant in terms of start and
// finish roles; when an analysis is supplied the steps name the actual
// wire colors instead.
type SolderingGuide struct{}

// NewSolderingGuide creates a guide renderer
func NewSolderingGuide() *SolderingGuide {
	return &SolderingGuide{}
}

// ForMode returns the generic guide for a wiring variant
func (g *SolderingGuide) ForMode(mode wiring.WiringMode) (string, error) {
	return g.render(mode, nil)
}

// ForAnalysis returns a guide with the analysis's wire colors substituted in
func (g *SolderingGuide) ForAnalysis(analysis *models.PickupAnalysis) (string, error) {
	return g.render(analysis.Mode, analysis)
}

func (g *SolderingGuide) render(mode wiring.WiringMode, analysis *models.PickupAnalysis) (string, error) {
	var b strings.Builder

	switch mode {
	case wiring.ModeSeries:
		b.WriteString("# Series humbucker wiring\n\n")
		b.WriteString("Both coils carry the full signal, giving the loudest and thickest output.\n\n")
		writeSteps(&b,
			"Tin the tip of the iron and let it reach full temperature before touching any joint.",
			step(analysis, "Solder the hot output wire %s to the switch or volume pot lug.", planWires(analysis, func(a *models.PickupAnalysis) []coil.WireLabel { return a.Plan.Output })),
			step(analysis, "Join the two series-link wires %s together and insulate the joint with shrink tube. This joint carries signal, keep it off the pot casing.", planWires(analysis, func(a *models.PickupAnalysis) []coil.WireLabel { return a.Plan.Series })),
			step(analysis, "Solder the ground wires %s to the back of the volume pot.", planWires(analysis, func(a *models.PickupAnalysis) []coil.WireLabel { return a.Plan.Ground })),
			"Tap each pole piece with a screwdriver while monitoring the amp: both coils should answer with a clear pop.",
		)
	case wiring.ModeParallel:
		b.WriteString("# Parallel humbucker wiring\n\n")
		b.WriteString("Both coils stay active but share the load. Brighter and quieter than series, still hum canceling.\n\n")
		writeSteps(&b,
			"Tin the tip of the iron and let it reach full temperature before touching any joint.",
			"Join both coil start wires together and solder them to the hot lug.",
			"Join both coil finish wires together and solder them to ground on the back of the volume pot.",
			"If the result sounds thin and hollow, the coils are out of phase: swap one coil's start and finish and re-check.",
		)
	case wiring.ModeSlugOnly:
		b.WriteString("# Slug coil split\n\n")
		b.WriteString("Only the slug coil stays active. Single-coil tone, no hum canceling.\n\n")
		writeSteps(&b,
			"Solder the slug coil start wire to the hot lug.",
			"Solder the slug coil finish wire to ground.",
			"Tape off the screw coil wires individually so neither can short against the cavity shielding.",
		)
	case wiring.ModeScrewOnly:
		b.WriteString("# Screw coil split\n\n")
		b.WriteString("Only the screw coil stays active. Single-coil tone, no hum canceling.\n\n")
		writeSteps(&b,
			"Solder the screw coil start wire to the hot lug.",
			"Solder the screw coil finish wire to ground.",
			"Tape off the slug coil wires individually so neither can short against the cavity shielding.",
		)
	default:
		return "", fmt.Errorf("%w: %q", core.ErrUnknownWiringMode, mode)
	}

	b.WriteString("\nAlways solder the bare shield wire to ground regardless of variant.\n")
	return b.String(), nil
}

// step substitutes wire names into the format when an analysis is present,
// otherwise falls back to role wording
func step(analysis *models.PickupAnalysis, format string, wires []string) string {
	if analysis == nil || len(wires) == 0 {
		format = strings.ReplaceAll(format, " %s", "")
		return format
	}
	return fmt.Sprintf(format, "("+strings.Join(wires, " + ")+")")
}

func planWires(analysis *models.PickupAnalysis, pick func(*models.PickupAnalysis) []coil.WireLabel) []string {
	if analysis == nil {
		return nil
	}
	wires := pick(analysis)
	names := make([]string, 0, len(wires))
	for _, w := range wires {
		names = append(names, string(w))
	}
	return names
}

func writeSteps(b *strings.Builder, steps ...string) {
	for i, s := range steps {
		fmt.Fprintf(b, "%d. %s\n", i+1, s)
	}
}
