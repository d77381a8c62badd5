package wiring

import (
	"math"
	"testing"
)

func fp(v float64) *float64 { return &v }

func TestComputeResistance_SeriesAndParallel(t *testing.T) {
	cases := []struct{ r1, r2 float64 }{
		{7.2, 7.2},
		{5.91, 5.95},
		{8.1, 6.4},
		{0.5, 12.0},
	}
	for _, c := range cases {
		series := ComputeResistance(fp(c.r1), fp(c.r2), ModeSeries)
		if series == nil || *series != c.r1+c.r2 {
			t.Errorf("series(%v,%v) = %v, want %v", c.r1, c.r2, series, c.r1+c.r2)
		}

		parallel := ComputeResistance(fp(c.r1), fp(c.r2), ModeParallel)
		want := (c.r1 * c.r2) / (c.r1 + c.r2)
		if parallel == nil || math.Abs(*parallel-want) > 1e-12 {
			t.Errorf("parallel(%v,%v) = %v, want %v", c.r1, c.r2, parallel, want)
		}
		if *parallel > math.Min(c.r1, c.r2) {
			t.Errorf("parallel(%v,%v) = %v exceeds smaller resistance", c.r1, c.r2, *parallel)
		}
	}
}

func TestComputeResistance_SingleCoilPassthrough(t *testing.T) {
	if got := ComputeResistance(fp(7.5), fp(8.2), ModeSlugOnly); got == nil || *got != 7.5 {
		t.Errorf("slug-only = %v, want 7.5", got)
	}
	if got := ComputeResistance(fp(7.5), fp(8.2), ModeScrewOnly); got == nil || *got != 8.2 {
		t.Errorf("screw-only = %v, want 8.2", got)
	}
	// the ignored side may be missing
	if got := ComputeResistance(fp(7.5), nil, ModeSlugOnly); got == nil || *got != 7.5 {
		t.Errorf("slug-only without r2 = %v, want 7.5", got)
	}
	if got := ComputeResistance(nil, nil, ModeSlugOnly); got != nil {
		t.Errorf("slug-only without r1 = %v, want nil", got)
	}
}

func TestComputeResistance_Guards(t *testing.T) {
	if got := ComputeResistance(nil, fp(8.0), ModeSeries); got != nil {
		t.Errorf("series with missing input = %v, want nil", got)
	}
	if got := ComputeResistance(fp(0), fp(8.0), ModeParallel); got != nil {
		t.Errorf("parallel with zero coil = %v, want nil", got)
	}
	if got := ComputeResistance(fp(4.0), fp(-4.0), ModeParallel); got != nil {
		t.Errorf("parallel with zero sum = %v, want nil", got)
	}
	if got := ComputeResistance(fp(4.0), fp(4.0), WiringMode("bonkers")); got != nil {
		t.Errorf("unknown mode = %v, want nil", got)
	}
}

func TestSummarizeResistance(t *testing.T) {
	res := SummarizeResistance(fp(5.91), fp(5.95))
	if res.Series == nil || math.Abs(*res.Series-11.86) > 1e-9 {
		t.Errorf("series = %v, want 11.86", res.Series)
	}
	if res.Parallel == nil || math.Abs(*res.Parallel-(5.91*5.95/11.86)) > 1e-9 {
		t.Errorf("parallel = %v", res.Parallel)
	}

	res = SummarizeResistance(fp(5.91), nil)
	if res.R1 == nil || res.R2 != nil || res.Series != nil || res.Parallel != nil {
		t.Errorf("partial summary wrong: %+v", res)
	}
}

func TestValidateHumCancel(t *testing.T) {
	for _, c := range []struct {
		a, b PhaseFlag
		want bool
	}{
		{PhaseNormal, PhaseReverse, true},
		{PhaseReverse, PhaseNormal, true},
		{PhaseNormal, PhaseNormal, false},
		{PhaseReverse, PhaseReverse, false},
	} {
		got := ValidateHumCancel(c.a, c.b)
		if got.Cancels != c.want {
			t.Errorf("ValidateHumCancel(%s,%s).Cancels = %v, want %v", c.a, c.b, got.Cancels, c.want)
		}
		if got.Message == "" {
			t.Errorf("ValidateHumCancel(%s,%s) has empty message", c.a, c.b)
		}
		// symmetry
		if flipped := ValidateHumCancel(c.b, c.a); flipped.Cancels != got.Cancels {
			t.Errorf("ValidateHumCancel is order-dependent for %s/%s", c.a, c.b)
		}
	}
}

func TestAnalyzeMagnetics_TruthTable(t *testing.T) {
	cases := []struct {
		a, b         MagneticPolarity
		windingsSame bool
		strength     OutputStrength
		cancels      bool
	}{
		{MagneticNorth, MagneticNorth, true, OutputStrong, false},
		{MagneticNorth, MagneticSouth, false, OutputStrong, true},
		{MagneticNorth, MagneticNorth, false, OutputWeak, true},
		{MagneticNorth, MagneticSouth, true, OutputWeak, false},
	}
	for _, c := range cases {
		got := AnalyzeMagnetics(c.a, c.b, c.windingsSame)
		if got.OutputStrength != c.strength || got.HumCancels != c.cancels {
			t.Errorf("AnalyzeMagnetics(%s,%s,same=%v) = %+v, want strength=%s cancels=%v",
				c.a, c.b, c.windingsSame, got, c.strength, c.cancels)
		}
	}
}
