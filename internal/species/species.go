package species

import (
	"errors"
	"fmt"
)

// ErrUnknownSpecies is returned when a name is not in the species table.
var ErrUnknownSpecies = errors.New("unknown species")

// Profile holds the calibration constants for one species.
type Profile struct {
	Name string `json:"name" example:"Chir Pine"`
	// FormFactor is the share of the enclosing cylinder occupied by the stem (0 < f < 1).
	FormFactor float64 `json:"formFactor" example:"0.45"`
	// A, B and C parameterise the Chapman-Richards height curve.
	A float64 `json:"a" example:"35"`
	B float64 `json:"b" example:"0.035"`
	C float64 `json:"c" example:"1.1"`
}

// profiles is ordered as the species are offered to the user.
var profiles = []Profile{
	{Name: "Chir Pine", FormFactor: 0.45, A: 35.0, B: 0.035, C: 1.1},
	{Name: "Blue Pine", FormFactor: 0.46, A: 38.0, B: 0.032, C: 1.2},
	{Name: "Deodar", FormFactor: 0.50, A: 40.0, B: 0.030, C: 1.2},
	{Name: "Fir/Spruce", FormFactor: 0.47, A: 42.0, B: 0.028, C: 1.3},
	{Name: "Oak", FormFactor: 0.48, A: 25.0, B: 0.040, C: 1.0},
	{Name: "Wild Olive", FormFactor: 0.42, A: 15.0, B: 0.050, C: 0.9},
}

var byName = func() map[string]Profile {
	m := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		m[p.Name] = p
	}
	return m
}()

// Lookup returns the profile registered under name.
func Lookup(name string) (Profile, error) {
	p, ok := byName[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
	}
	return p, nil
}

// Names lists every species in display order.
func Names() []string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return names
}

// All returns a copy of every profile in display order.
func All() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}
