// Package workout computes distance, mean speed and spent calories for the
// supported workout kinds.
package workout

import "ftracker/internal/report"

// Kind is the sensor package code identifying a workout kind
type Kind string

const (
	KindRunning       Kind = "RUN"
	KindSportsWalking Kind = "WLK"
	KindSwimming      Kind = "SWM"
)

// Workout is a single workout able to report its own metrics
type Workout interface {
	Kind() Kind
	Label() string
	Hours() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
}

// Training holds the readings shared by every workout kind.
// It has no calorie formula of its own and therefore does not satisfy Workout.
type Training struct {
	action   float64 // steps or strokes
	duration float64 // hours
	weight   float64 // kg
	lenStep  float64 // meters per action
}

func newTraining(action, duration, weight, lenStep float64) Training {
	return Training{
		action:   action,
		duration: duration,
		weight:   weight,
		lenStep:  lenStep,
	}
}

// Action returns the raw step or stroke count
func (t Training) Action() float64 { return t.action }

// Hours returns the workout duration in hours
func (t Training) Hours() float64 { return t.duration }

// Weight returns the athlete weight in kg
func (t Training) Weight() float64 { return t.weight }

// Distance returns the distance covered in km
func (t Training) Distance() float64 {
	return t.action * t.lenStep / MetersPerKm
}

// MeanSpeed returns the average speed in km/h over the whole workout
func (t Training) MeanSpeed() float64 {
	return t.Distance() / t.duration
}

// ShowTrainingInfo builds the summary message for a workout
func ShowTrainingInfo(w Workout) report.InfoMessage {
	return report.NewInfoMessage(
		w.Label(),
		w.Hours(),
		w.Distance(),
		w.MeanSpeed(),
		w.SpentCalories(),
	)
}
