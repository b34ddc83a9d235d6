package workout

const (
	// Shared conversions
	MetersPerKm    = 1000
	MinutesPerHour = 60

	// Distance covered per step (land) or stroke (swimming), meters
	LenStep         = 0.65
	SwimmingLenStep = 1.38

	// Running calories
	RunningSpeedMultiplier = 18
	RunningSpeedShift      = 20

	// Sports-walking calories
	WalkingWeightMultiplier = 0.035
	WalkingSpeedMultiplier  = 0.029

	// Swimming calories
	SwimmingSpeedShift       = 1.1
	SwimmingWeightMultiplier = 2
)
