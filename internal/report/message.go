// Package report formats computed workout metrics for output.
package report

import "fmt"

// InfoMessage is the summary of a single workout
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// NewInfoMessage creates an InfoMessage
func NewInfoMessage(trainingType string, duration, distance, speed, calories float64) InfoMessage {
	return InfoMessage{
		TrainingType: trainingType,
		Duration:     duration,
		Distance:     distance,
		Speed:        speed,
		Calories:     calories,
	}
}

// Message renders the summary line. Every number has exactly three decimals.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(
		"Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories,
	)
}
