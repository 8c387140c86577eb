package service

import (
	"time"

	"pitchbook/internal/core/ports"
)

// systemClock implements ports.Clock with the wall clock.
type systemClock struct{}

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() ports.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
