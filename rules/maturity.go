package rules

// Maturity is tracked in tenths so repeated increments stay exact.
const (
	BirthMaturity   uint8 = 1
	MaxMaturity     uint8 = 10
	MaturityPerTick uint8 = 1
)

// NextMaturity returns the maturity of a cell that survived one more generation
func NextMaturity(tenths uint8) uint8 {
	return min(tenths+MaturityPerTick, MaxMaturity)
}

// MaturityValue converts tenths to the [0.1, 1.0] range
func MaturityValue(tenths uint8) float64 {
	return float64(tenths) / 10
}
