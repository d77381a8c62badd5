package detect

import (
	"math"
	"testing"
)

// sampleMatrix mirrors a typical 4-conductor humbucker measurement set:
// two windings around 7kΩ, a reading across the outer leads, and near-zero
// continuity from each lead to the bare shield.
func sampleMatrix() Measurements {
	return Measurements{
		"red-white":   7200.0,
		"green-black": 7300.0,
		"red-black":   14500.0,
		"red-bare":    0.5,
		"black-bare":  0.6,
		"white-bare":  0.55,
		"green-bare":  0.58,
	}
}

func TestFindCoilPairs(t *testing.T) {
	pairs := FindCoilPairs(sampleMatrix())
	if len(pairs) != 2 {
		t.Fatalf("expected 2 coil pairs, got %d: %v", len(pairs), pairs)
	}
	// greedy ascending: the two windings claim their wires first, so the
	// 14.5k outer-lead reading is blocked
	if pairs[0].Resistance != 7200.0 || pairs[1].Resistance != 7300.0 {
		t.Errorf("unexpected pairs %v", pairs)
	}
}

func TestFindCoilPairs_SharedWireBlocksSecondPair(t *testing.T) {
	// A tapped winding measured as two halves shares the tap wire; greedy
	// selection keeps only the first half.
	m := Measurements{
		"red-white":   3600.0,
		"white-black": 3600.0,
		"red-black":   7200.0,
	}
	pairs := FindCoilPairs(m)
	if len(pairs) != 1 {
		t.Errorf("expected 1 pair, got %v", pairs)
	}
}

func TestFindCoilPairs_WindowFilter(t *testing.T) {
	m := Measurements{
		"red-bare":    0.5,     // below 10Ω: continuity, not a winding
		"green-black": 25000.0, // above 20kΩ: open or broken
		"red-white":   6800.0,
	}
	pairs := FindCoilPairs(m)
	if len(pairs) != 1 || pairs[0].Resistance != 6800.0 {
		t.Errorf("expected the single 6.8k pair, got %v", pairs)
	}
}

func TestFindCoilPairs_MalformedKeys(t *testing.T) {
	m := Measurements{
		"redwhite":   7200.0,
		"-":          7200.0,
		"red-white":  7200.0,
		"green-blue": 7300.0,
	}
	pairs := FindCoilPairs(m)
	if len(pairs) != 2 {
		t.Errorf("expected 2 usable pairs, got %v", pairs)
	}
}

func TestDetectCenterTap(t *testing.T) {
	// white shows near-zero continuity to green besides its own winding,
	// marking a shared tap between the two coils
	m := Measurements{
		"red-white":   7200.0,
		"green-black": 7300.0,
		"white-green": 5.0,
	}
	pairs := FindCoilPairs(m)
	if len(pairs) < 2 {
		t.Fatalf("need 2 pairs, got %v", pairs)
	}
	if tap := DetectCenterTap(m, pairs); !tap.IsKnown() {
		t.Error("expected a center tap candidate")
	}
}

func TestDetectCenterTap_NeedsTwoPairs(t *testing.T) {
	m := Measurements{"red-white": 7200.0}
	if tap := DetectCenterTap(m, FindCoilPairs(m)); tap.IsKnown() {
		t.Errorf("single pair cannot have a center tap, got %s", tap)
	}
}

func TestDetectCenterTap_CleanHumbucker(t *testing.T) {
	// fully isolated windings: nothing qualifies
	m := Measurements{
		"red-white":   7200.0,
		"green-black": 7300.0,
	}
	if tap := DetectCenterTap(m, FindCoilPairs(m)); tap.IsKnown() {
		t.Errorf("isolated windings should have no tap, got %s", tap)
	}
}

func TestSummarizeCoils(t *testing.T) {
	res := SummarizeCoils(FindCoilPairs(sampleMatrix()))
	if res.Series == nil || *res.Series != 14500.0 {
		t.Errorf("series = %v, want 14500", res.Series)
	}
	want := 7200.0 * 7300.0 / 14500.0
	if res.Parallel == nil || math.Abs(*res.Parallel-want) > 1e-9 {
		t.Errorf("parallel = %v, want %v", res.Parallel, want)
	}
}

func TestConfirmSeriesReading(t *testing.T) {
	pairs := FindCoilPairs(sampleMatrix())
	if !ConfirmSeriesReading(14500.0, pairs) {
		t.Error("exact sum should confirm")
	}
	if !ConfirmSeriesReading(15100.0, pairs) {
		t.Error("reading within tolerance should confirm")
	}
	if ConfirmSeriesReading(40000.0, pairs) {
		t.Error("wildly high reading should not confirm")
	}
	if ConfirmSeriesReading(14500.0, pairs[:1]) {
		t.Error("one pair cannot confirm a series reading")
	}
}

func TestSmoothReadings(t *testing.T) {
	got := SmoothReadings([]float64{7.18, 7.22, 7.19, math.NaN(), 9.4})
	if got == nil || math.Abs(*got-7.205) > 1e-9 {
		t.Errorf("median = %v, want 7.205", got)
	}
	if got := SmoothReadings(nil); got != nil {
		t.Errorf("no samples should yield nil, got %v", got)
	}
	if got := SmoothReadings([]float64{math.Inf(1)}); got != nil {
		t.Errorf("all-invalid samples should yield nil, got %v", got)
	}
}

func TestAnalyze(t *testing.T) {
	res := Analyze(sampleMatrix())
	if len(res.Pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %v", res.Pairs)
	}
	if res.Plan.Explanation == "" || res.Plan.Diagram == "" {
		t.Error("plan text should not be empty")
	}
}
