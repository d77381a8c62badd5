package wiring

import (
	"fmt"
	"strings"

	"coilmap/domain/coil"
	"coilmap/domain/core"
)

// ColorPreset names the conventional lead colors of a 4-conductor pickup
// for one manufacturer
type ColorPreset struct {
	Name        string         `json:"name"`
	SlugStart   coil.WireLabel `json:"slug_start"`
	SlugFinish  coil.WireLabel `json:"slug_finish"`
	ScrewStart  coil.WireLabel `json:"screw_start"`
	ScrewFinish coil.WireLabel `json:"screw_finish"`
	GroundWire  coil.WireLabel `json:"ground_wire"`
}

// SlugPair returns the slug coil's wires as a pair
func (p ColorPreset) SlugPair() coil.CoilWirePair {
	return coil.NewCoilWirePair(p.SlugStart, p.SlugFinish)
}

// ScrewPair returns the screw coil's wires as a pair
func (p ColorPreset) ScrewPair() coil.CoilWirePair {
	return coil.NewCoilWirePair(p.ScrewStart, p.ScrewFinish)
}

// colorPresets holds the built-in manufacturer color conventions
var colorPresets = []ColorPreset{
	{
		Name:        "Bare Knuckle",
		SlugStart:   "Red",
		SlugFinish:  "White",
		ScrewStart:  "Green",
		ScrewFinish: "Black",
		GroundWire:  coil.BareWire,
	},
	{
		Name:        "Generic 4-conductor",
		SlugStart:   "Red",
		SlugFinish:  "White",
		ScrewStart:  "Green",
		ScrewFinish: "Black",
		GroundWire:  coil.BareWire,
	},
}

// ColorPresets returns every built-in manufacturer color preset
func ColorPresets() []ColorPreset {
	out := make([]ColorPreset, len(colorPresets))
	copy(out, colorPresets)
	return out
}

// ColorPresetByName looks up a preset by its manufacturer name,
// case-insensitively
func ColorPresetByName(name string) (ColorPreset, error) {
	for _, p := range colorPresets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return ColorPreset{}, fmt.Errorf("%w: %q", core.ErrPresetNotFound, name)
}
