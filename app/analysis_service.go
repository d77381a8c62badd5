package app

import (
	"fmt"
	"strings"

	"coilmap/domain/coil"
	"coilmap/domain/core"
	"coilmap/domain/detect"
	"coilmap/domain/wiring"
	"coilmap/internal"
	"coilmap/models"
)

// AnalysisService turns raw workbench measurements into wiring plans. All
// free-form input text is normalized here, so the domain packages below it
// only ever see closed enums.
type AnalysisService struct {
	logger *internal.Logger
}

// NewAnalysisService creates an analysis service
func NewAnalysisService(logger *internal.Logger) *AnalysisService {
	return &AnalysisService{
		logger: logger.WithComponent("analysis"),
	}
}

// AnalyzePickup runs the full inference pipeline for one pickup: per-coil
// role and polarity inference, phase flags, resistance smoothing, the wiring
// plan and the hum-cancel verdict
func (s *AnalysisService) AnalyzePickup(input models.PickupInput) (*models.PickupAnalysis, error) {
	slug, err := s.analyzeCoil("slug", input.Slug)
	if err != nil {
		return nil, err
	}
	screw, err := s.analyzeCoil("screw", input.Screw)
	if err != nil {
		return nil, err
	}

	mode := wiring.WiringMode(strings.ToLower(strings.TrimSpace(input.Mode)))
	if !mode.IsKnown() && input.Mode != "" {
		s.logger.Warn("unknown wiring mode %q requested, plan will carry a note", input.Mode)
	}

	slugRoles := slug.analysis.Roles
	screwRoles := screw.analysis.Roles
	plan := wiring.BuildPlan(slugRoles, screwRoles, mode, input.GroundWirePresent, slug.analysis.Phase, screw.analysis.Phase)

	analysis := &models.PickupAnalysis{
		Name:        input.Name,
		Mode:        mode,
		Slug:        slug.analysis,
		Screw:       screw.analysis,
		Plan:        plan,
		Equivalent:  wiring.ComputeResistance(slug.analysis.ResistanceKOhm, screw.analysis.ResistanceKOhm, mode),
		Resistances: wiring.SummarizeResistance(slug.analysis.ResistanceKOhm, screw.analysis.ResistanceKOhm),
		HumCancel:   wiring.ValidateHumCancel(slug.analysis.Phase, screw.analysis.Phase),
	}

	// magnetic truth table only when both magnets were compass-tested
	slugMagnet := wiring.ParseMagneticPolarity(input.SlugMagnet)
	screwMagnet := wiring.ParseMagneticPolarity(input.ScrewMagnet)
	if slugMagnet != "" && screwMagnet != "" {
		windingsSame := slug.analysis.Phase == screw.analysis.Phase
		report := wiring.AnalyzeMagnetics(slugMagnet, screwMagnet, windingsSame)
		analysis.Magnetics = &report
	}

	s.logger.Info("analyzed pickup %q: mode=%s cancels=%v", input.Name, mode, analysis.HumCancel.Cancels)
	return analysis, nil
}

// DetectLayout maps a full resistance matrix to coil windings, a center tap
// and a suggested hookup. A non-nil outerOhms is a reading taken across the
// presumed outer leads and gets checked against the discovered pairs.
func (s *AnalysisService) DetectLayout(measurements detect.Measurements, outerOhms *float64) (detect.Result, error) {
	if len(measurements) == 0 {
		return detect.Result{}, core.ErrInsufficientData
	}
	result := detect.Analyze(measurements)
	if outerOhms != nil {
		confirmed := detect.ConfirmSeriesReading(*outerOhms, result.Pairs)
		result.SeriesConfirmed = &confirmed
	}
	s.logger.Info("detected %d coil pair(s) from %d readings", len(result.Pairs), len(measurements))
	return result, nil
}

type coilOutcome struct {
	analysis models.CoilAnalysis
}

func (s *AnalysisService) analyzeCoil(which string, input models.CoilInput) (coilOutcome, error) {
	pair, err := pairFromWires(input.Wires)
	if err != nil {
		return coilOutcome{}, fmt.Errorf("%s coil: %w", which, err)
	}

	leads := coil.ProbeLeads{
		Red:   coil.WireLabel(strings.TrimSpace(input.RedLead)),
		Black: coil.WireLabel(strings.TrimSpace(input.BlackLead)),
	}
	obs := coil.ParseObservation(input.Observation)
	if input.Observation != "" && !obs.IsKnown() {
		s.logger.Warn("%s coil: unrecognized observation %q, treating as unknown", which, input.Observation)
	}

	roles := coil.InferRoles(pair, leads, obs, input.ManualSwap)
	polarity := coil.InferPolarity(pair, leads, obs, input.ManualSwap)

	// A conflict means the electrically positive wire is not the wire
	// assigned START. Toggling the manual swap always reconciles the two,
	// so the suggestion is simply the conflict itself.
	conflict := polarity.PositiveWire.IsKnown() &&
		roles.Start.IsKnown() &&
		polarity.PositiveWire != roles.Start

	return coilOutcome{
		analysis: models.CoilAnalysis{
			Roles:             roles,
			Polarity:          polarity,
			Phase:             wiring.PhaseFromObservation(obs),
			ResistanceKOhm:    detect.SmoothReadings(input.Readings),
			PolarityConflict:  conflict,
			SuggestManualSwap: conflict,
		},
	}, nil
}

func pairFromWires(wires []string) (coil.CoilWirePair, error) {
	labels := make([]coil.WireLabel, 0, len(wires))
	for _, w := range wires {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		labels = append(labels, coil.WireLabel(w))
	}

	switch len(labels) {
	case 0:
		return coil.CoilWirePair{}, nil
	case 1:
		return coil.NewCoilWirePair(labels[0], ""), nil
	case 2:
		if labels[0] == labels[1] {
			return coil.CoilWirePair{}, core.ErrInvalidWirePair
		}
		return coil.NewCoilWirePair(labels[0], labels[1]), nil
	default:
		return coil.CoilWirePair{}, core.ErrInvalidWirePair
	}
}
