package graphics

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightNormal   FontWeight = 400
	FontWeightSemibold FontWeight = 600
	FontWeightBold     FontWeight = 700
)
