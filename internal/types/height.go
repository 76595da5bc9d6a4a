package types

// HeightSource records whether a tree height was measured in the field or
// derived from its diameter
type HeightSource int

const (
	HeightMeasured HeightSource = iota
	HeightEstimated
)

var heightSourceNames = map[HeightSource]string{
	HeightMeasured:  "Measured",
	HeightEstimated: "Estimated",
}

func (s HeightSource) String() string {
	if name, ok := heightSourceNames[s]; ok {
		return name
	}
	return "Unknown"
}

