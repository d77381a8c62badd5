package wiring

// ValidateHumCancel checks whether two coils' electrical phases oppose, the
// structural requirement for hum cancellation. It does not verify magnetic
// pole orientation; that is a separate, user-supplied fact (see
// AnalyzeMagnetics).
func ValidateHumCancel(phaseA, phaseB PhaseFlag) HumCancelReport {
	if phaseA != phaseB {
		return HumCancelReport{
			Cancels: true,
			Message: "Coil phases oppose: the internal wiring is structurally hum-cancelling. " +
				"Note this check does not verify magnetic pole orientation.",
		}
	}
	return HumCancelReport{
		Cancels: false,
		Message: "Both coils share the same electrical phase and will NOT hum-cancel. " +
			"Invert one coil's start/finish assignment or physically reverse that coil's wire pair.",
	}
}

// AnalyzeMagnetics combines the magnetic polarities of the two coils with
// their winding relationship into the classic humbucker truth table:
//
//	magnets same,     windings same     -> strong output, no cancellation
//	magnets opposite, windings opposite -> strong output, hum-cancelling (RWRP)
//	magnets same,     windings opposite -> weak output, hum-cancelling
//	magnets opposite, windings same     -> weak output, no cancellation
func AnalyzeMagnetics(polarityA, polarityB MagneticPolarity, windingsSame bool) MagneticReport {
	magRelation := RelationOpposite
	if polarityA == polarityB {
		magRelation = RelationSame
	}
	windRelation := RelationOpposite
	if windingsSame {
		windRelation = RelationSame
	}

	report := MagneticReport{
		MagneticRelation: magRelation,
		WindingRelation:  windRelation,
	}
	if magRelation == windRelation {
		report.OutputStrength = OutputStrong
	} else {
		report.OutputStrength = OutputWeak
	}
	// hum cancels only when the windings oppose
	report.HumCancels = windRelation == RelationOpposite
	return report
}
