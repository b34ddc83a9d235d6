package workout

// Swimming is a pool swimming workout
type Swimming struct {
	Training
	lengthPool float64 // meters
	countPool  float64 // laps
}

// NewSwimming creates a swimming workout
func NewSwimming(action, duration, weight, lengthPool, countPool float64) Swimming {
	return Swimming{
		Training:   newTraining(action, duration, weight, SwimmingLenStep),
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

// Kind returns KindSwimming
func (s Swimming) Kind() Kind { return KindSwimming }

// Label returns the name shown in the summary
func (s Swimming) Label() string { return "Swimming" }

// MeanSpeed returns the average speed in km/h derived from pool laps.
// The stroke count plays no part in it.
func (s Swimming) MeanSpeed() float64 {
	return s.lengthPool * s.countPool / MetersPerKm / s.duration
}

// SpentCalories returns kcal burned while swimming
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + SwimmingSpeedShift) * SwimmingWeightMultiplier * s.weight
}
