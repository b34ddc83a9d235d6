package workout

// Running is a running workout
type Running struct {
	Training
}

// NewRunning creates a running workout
func NewRunning(action, duration, weight float64) Running {
	return Running{Training: newTraining(action, duration, weight, LenStep)}
}

// Kind returns KindRunning
func (r Running) Kind() Kind { return KindRunning }

// Label returns the name shown in the summary
func (r Running) Label() string { return "Running" }

// SpentCalories returns kcal burned while running
func (r Running) SpentCalories() float64 {
	return (RunningSpeedMultiplier*r.MeanSpeed() - RunningSpeedShift) *
		r.weight / MetersPerKm * r.duration * MinutesPerHour
}
