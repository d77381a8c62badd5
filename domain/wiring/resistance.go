package wiring

// ComputeResistance returns the pickup's equivalent resistance for a wiring
// mode, or nil when the inputs cannot support an answer. Division by zero is
// guarded explicitly; no mode ever produces an error or an infinity.
func ComputeResistance(r1, r2 *float64, mode WiringMode) *float64 {
	switch mode {
	case ModeSeries:
		if r1 == nil || r2 == nil {
			return nil
		}
		v := *r1 + *r2
		return &v

	case ModeParallel:
		if r1 == nil || r2 == nil {
			return nil
		}
		if *r1 == 0 || *r2 == 0 || *r1+*r2 == 0 {
			return nil
		}
		v := (*r1 * *r2) / (*r1 + *r2)
		return &v

	case ModeSlugOnly:
		return copyFloat(r1)

	case ModeScrewOnly:
		return copyFloat(r2)
	}

	return nil
}

// SummarizeResistance reports both coil readings together with their series
// sum and parallel combination. Parallel stays nil when either reading is
// missing or the sum is zero.
func SummarizeResistance(r1, r2 *float64) ResistanceResult {
	res := ResistanceResult{R1: copyFloat(r1), R2: copyFloat(r2)}
	if r1 == nil || r2 == nil {
		return res
	}
	series := *r1 + *r2
	res.Series = &series
	if series != 0 {
		parallel := (*r1 * *r2) / series
		res.Parallel = &parallel
	}
	return res
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
