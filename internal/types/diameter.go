package types

const CentimetersPerMeter = 100

// Diameter is a stem diameter, as taken at breast height
type Diameter struct {
	Centimeters float64
	Meters      float64
}

func NewDiameterFromCentimeters(centimeters float64) Diameter {
	return Diameter{
		Centimeters: centimeters,
		Meters:      centimeters / CentimetersPerMeter,
	}
}
