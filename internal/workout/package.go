package workout

import (
	"errors"
	"fmt"
)

// ErrUnknownWorkout is returned when a package carries an unrecognized kind code
var ErrUnknownWorkout = errors.New("unknown workout kind")

// ErrArgCount is returned when a package has the wrong number of readings for its kind
var ErrArgCount = errors.New("wrong number of readings")

type constructor struct {
	arity int
	build func(data []float64) Workout
}

var constructors = map[Kind]constructor{
	KindRunning: {
		arity: 3,
		build: func(data []float64) Workout {
			return NewRunning(data[0], data[1], data[2])
		},
	},
	KindSportsWalking: {
		arity: 4,
		build: func(data []float64) Workout {
			return NewSportsWalking(data[0], data[1], data[2], data[3])
		},
	},
	KindSwimming: {
		arity: 5,
		build: func(data []float64) Workout {
			return NewSwimming(data[0], data[1], data[2], data[3], data[4])
		},
	},
}

// Kinds returns the recognized kind codes in a stable order
func Kinds() []Kind {
	return []Kind{KindRunning, KindSportsWalking, KindSwimming}
}

// ReadPackage builds the workout described by a sensor package.
// Readings are assigned positionally and are not range checked:
//
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
//	SWM: action, duration, weight, lengthPool, countPool
func ReadPackage(code string, data []float64) (Workout, error) {
	c, ok := constructors[Kind(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkout, code)
	}
	if len(data) != c.arity {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArgCount, code, c.arity, len(data))
	}
	return c.build(data), nil
}
