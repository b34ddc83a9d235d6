package workout

import "math"

// SportsWalking is a race-walking workout
type SportsWalking struct {
	Training
	height float64 // cm
}

// NewSportsWalking creates a sports-walking workout
func NewSportsWalking(action, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		Training: newTraining(action, duration, weight, LenStep),
		height:   height,
	}
}

// Kind returns KindSportsWalking
func (w SportsWalking) Kind() Kind { return KindSportsWalking }

// Label returns the name shown in the summary
func (w SportsWalking) Label() string { return "SportsWalking" }

// Height returns the athlete height in cm
func (w SportsWalking) Height() float64 { return w.height }

// SpentCalories returns kcal burned while walking.
// The speed/height term is floor-divided, not divided.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	ratio := floorDiv(speed*speed, w.height)
	return (WalkingWeightMultiplier*w.weight +
		ratio*WalkingSpeedMultiplier*w.weight) *
		w.duration * MinutesPerHour
}

// floorDiv returns the floor of a/b computed from the remainder, so the
// result stays exact when a/b rounds up to an integer.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1
	}
	return floor
}
