package sim

import (
	"fmt"

	"atom-ca/internal/core"
	"atom-ca/internal/elements"
)

// ParameterSnapshot captures the current tunables for presentation.
func (w *World) ParameterSnapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name:    "Population",
				Summary: "initial densities used on reset",
				Params: []core.Parameter{
					{Key: "fish_density", Label: "Fish density", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.3f", w.cfg.Params.FishDensity)},
					{Key: "shark_density", Label: "Shark density", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.3f", w.cfg.Params.SharkDensity)},
				},
			},
			{
				Name:    "Life cycle",
				Summary: "thresholds stamped into new atoms",
				Params: []core.Parameter{
					{Key: "fish_birth_age", Label: "Fish birth age", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", w.fish.DefaultBirthAge())},
					{Key: "shark_birth_age", Label: "Shark birth age", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", w.shark.DefaultBirthAge())},
					{Key: "shark_energy_per_fish", Label: "Energy per fish", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", w.shark.EnergyPerFish())},
				},
			},
		},
	}
}

// ParameterControls lists the tunables adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "fish_birth_age", Label: "Fish birth age", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: elements.MaxWaPatAge, HasMin: true, HasMax: true},
		{Key: "shark_birth_age", Label: "Shark birth age", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: elements.MaxWaPatAge, HasMin: true, HasMax: true},
		{Key: "shark_energy_per_fish", Label: "Energy per fish", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: elements.MaxSharkEnergy, HasMin: true, HasMax: true},
		{Key: "fish_density", Label: "Fish density", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "shark_density", Label: "Shark density", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable between steps. New values only
// affect atoms created afterwards; packed state already on the grid keeps
// the thresholds it was born with.
func (w *World) SetIntParameter(key string, value int) bool {
	if value < 0 {
		value = 0
	}
	switch key {
	case "fish_birth_age":
		w.cfg.Params.FishBirthAge = value
		w.fish.SetDefaultBirthAge(uint32(value))
		w.reg.RefreshDefaultAtom(w.fish)
	case "shark_birth_age":
		w.cfg.Params.SharkBirthAge = value
		w.shark.SetDefaultBirthAge(uint32(value))
		w.reg.RefreshDefaultAtom(w.shark)
	case "shark_energy_per_fish":
		w.cfg.Params.SharkEnergyPerFish = value
		w.shark.SetEnergyPerFish(uint32(value))
		w.reg.RefreshDefaultAtom(w.shark)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float tunable; densities apply on the next
// Reset.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	switch key {
	case "fish_density":
		w.cfg.Params.FishDensity = value
	case "shark_density":
		w.cfg.Params.SharkDensity = value
	default:
		return false
	}
	return true
}
