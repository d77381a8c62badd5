package app

import (
	"testing"

	"coilmap/domain/coil"
	"coilmap/domain/core"
	"coilmap/domain/detect"
	"coilmap/domain/wiring"
	"coilmap/internal"
	"coilmap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *AnalysisService {
	return NewAnalysisService(internal.NewLogger(internal.LogLevelError))
}

func TestAnalyzePickup_SeriesRWRP(t *testing.T) {
	svc := newTestService()

	input := models.PickupInput{
		Name: "bridge humbucker",
		Slug: models.CoilInput{
			Wires:       []string{"Green", "Red"},
			RedLead:     "Green",
			BlackLead:   "Red",
			Observation: "laskee",
			Readings:    []float64{7.1, 7.2, 7.3},
		},
		Screw: models.CoilInput{
			Wires:       []string{"Black", "White"},
			RedLead:     "Black",
			Observation: "nousee",
			Readings:    []float64{7.0},
		},
		GroundWirePresent: true,
		Mode:              "Series",
	}

	result, err := svc.AnalyzePickup(input)
	require.NoError(t, err)

	// slug coil probed in reverse: black lead marks the start
	assert.Equal(t, coil.WireLabel("Red"), result.Slug.Roles.Start)
	assert.Equal(t, coil.WireLabel("Green"), result.Slug.Roles.Finish)
	assert.Equal(t, coil.WireLabel("Red"), result.Slug.Polarity.PositiveWire)
	assert.False(t, result.Slug.PolarityConflict)

	// screw coil probed normally with only the red lead recorded
	assert.Equal(t, coil.WireLabel("Black"), result.Screw.Roles.Start)
	assert.Equal(t, coil.WireLabel("White"), result.Screw.Roles.Finish)

	// opposite phases join finish to finish
	assert.Equal(t, []coil.WireLabel{"Red"}, result.Plan.Output)
	assert.Equal(t, []coil.WireLabel{"Green", "White"}, result.Plan.Series)
	assert.Equal(t, []coil.WireLabel{"Black", coil.BareWire}, result.Plan.Ground)

	assert.True(t, result.HumCancel.Cancels)

	require.NotNil(t, result.Slug.ResistanceKOhm)
	assert.InDelta(t, 7.2, *result.Slug.ResistanceKOhm, 1e-9)
	require.NotNil(t, result.Equivalent)
	assert.InDelta(t, 14.2, *result.Equivalent, 1e-9)
}

func TestAnalyzePickup_ManualSwapConflict(t *testing.T) {
	svc := newTestService()

	input := models.PickupInput{
		Slug: models.CoilInput{
			Wires:       []string{"Green", "Red"},
			RedLead:     "Green",
			BlackLead:   "Red",
			Observation: "normal",
			ManualSwap:  true,
		},
		Screw: models.CoilInput{
			Wires: []string{"Black", "White"},
		},
		Mode: "series",
	}

	result, err := svc.AnalyzePickup(input)
	require.NoError(t, err)

	// swap moves START off the electrically positive wire
	assert.Equal(t, coil.WireLabel("Red"), result.Slug.Roles.Start)
	assert.Equal(t, coil.WireLabel("Green"), result.Slug.Polarity.PositiveWire)
	assert.True(t, result.Slug.PolarityConflict)
	assert.True(t, result.Slug.SuggestManualSwap)
}

func TestAnalyzePickup_UnknownModeCarriesNote(t *testing.T) {
	svc := newTestService()

	result, err := svc.AnalyzePickup(models.PickupInput{
		Slug:  models.CoilInput{Wires: []string{"Red", "White"}},
		Screw: models.CoilInput{Wires: []string{"Green", "Black"}},
		Mode:  "out-of-phase",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Plan.Notes)
	assert.Empty(t, result.Plan.Output)
	assert.Nil(t, result.Equivalent)
}

func TestAnalyzePickup_RejectsBadWireLists(t *testing.T) {
	svc := newTestService()

	_, err := svc.AnalyzePickup(models.PickupInput{
		Slug:  models.CoilInput{Wires: []string{"Red", "White", "Green"}},
		Screw: models.CoilInput{Wires: []string{"Green", "Black"}},
		Mode:  "series",
	})
	assert.ErrorIs(t, err, core.ErrInvalidWirePair)

	_, err = svc.AnalyzePickup(models.PickupInput{
		Slug:  models.CoilInput{Wires: []string{"Red", "Red"}},
		Screw: models.CoilInput{Wires: []string{"Green", "Black"}},
		Mode:  "series",
	})
	assert.ErrorIs(t, err, core.ErrInvalidWirePair)
}

func TestAnalyzePickup_PartialInputStaysUsable(t *testing.T) {
	svc := newTestService()

	// no leads, no observation, one wire missing: roles stay empty but the
	// caller still gets a response to build on
	result, err := svc.AnalyzePickup(models.PickupInput{
		Slug:  models.CoilInput{Wires: []string{"Red"}},
		Screw: models.CoilInput{Wires: []string{"Green", "Black"}},
		Mode:  "series",
	})
	require.NoError(t, err)

	assert.False(t, result.Slug.Roles.Resolved())
	assert.True(t, result.Screw.Roles.Resolved())
}

func TestDetectLayout(t *testing.T) {
	svc := newTestService()

	matrix := detect.Measurements{
		"red-white":   7200,
		"green-black": 7300,
		"red-black":   14500,
	}

	result, err := svc.DetectLayout(matrix, nil)
	require.NoError(t, err)
	assert.Len(t, result.Pairs, 2)
	assert.Nil(t, result.SeriesConfirmed)

	outer := 14500.0
	result, err = svc.DetectLayout(matrix, &outer)
	require.NoError(t, err)
	require.NotNil(t, result.SeriesConfirmed)
	assert.True(t, *result.SeriesConfirmed)

	_, err = svc.DetectLayout(detect.Measurements{}, nil)
	assert.ErrorIs(t, err, core.ErrInsufficientData)
}

func TestAnalyzePickup_Magnetics(t *testing.T) {
	svc := newTestService()

	input := models.PickupInput{
		Slug:        models.CoilInput{Wires: []string{"Red", "White"}, RedLead: "Red", Observation: "normal"},
		Screw:       models.CoilInput{Wires: []string{"Green", "Black"}, RedLead: "Green", Observation: "reverse"},
		Mode:        "series",
		SlugMagnet:  "north",
		ScrewMagnet: "south",
	}

	result, err := svc.AnalyzePickup(input)
	require.NoError(t, err)

	// opposite magnets with opposite windings is the classic RWRP pair
	require.NotNil(t, result.Magnetics)
	assert.Equal(t, wiring.OutputStrong, result.Magnetics.OutputStrength)
	assert.True(t, result.Magnetics.HumCancels)

	// magnets omitted: no magnetic verdict at all
	input.SlugMagnet = ""
	result, err = svc.AnalyzePickup(input)
	require.NoError(t, err)
	assert.Nil(t, result.Magnetics)
}
