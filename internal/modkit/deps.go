// Package modkit provides module wiring and core deps
package modkit

import (
	"time"

	"commlog/internal/platform/config"
	"commlog/internal/platform/logger"
	ptime "commlog/internal/platform/time"
	"commlog/internal/services/api/events/domain"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf

	// Provider is the calendar source every read goes through
	Provider domain.Provider
	// Location renders event times and anchors range instants
	Location *time.Location
	// Clock defaults to the wall clock
	Clock ptime.Clock
}

// Loc returns the display location, UTC when unset
func (d Deps) Loc() *time.Location {
	if d.Location == nil {
		return time.UTC
	}
	return d.Location
}

// Now returns the configured clock, the system clock when unset
func (d Deps) Now() ptime.Clock {
	if d.Clock == nil {
		return ptime.System()
	}
	return d.Clock
}
