package types

const CubicMetersToCubicFeet = 35.3147

// Volume is a wood volume carried in both metric and imperial units
type Volume struct {
	CubicMeters float64 `json:"cubicMeters" example:"0.4771"`
	CubicFeet   float64 `json:"cubicFeet" example:"16.85"`
}

func NewVolumeFromCubicMeters(cubicMeters float64) Volume {
	return Volume{
		CubicMeters: cubicMeters,
		CubicFeet:   cubicMeters * CubicMetersToCubicFeet,
	}
}

// Times scales both units by a tree count.
func (v Volume) Times(count int) Volume {
	n := float64(count)
	return Volume{
		CubicMeters: v.CubicMeters * n,
		CubicFeet:   v.CubicFeet * n,
	}
}
