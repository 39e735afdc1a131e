// Package scheduler computes wall-clock fire times from cron specs in a fixed timezone.
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSpec fires every day at midnight
const DefaultSpec = "0 0 * * *"

// standard five-field cron: minute hour day-of-month month day-of-week
var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Schedule is a parsed cron spec anchored to a location
type Schedule struct {
	spec     string
	location *time.Location
	schedule cron.Schedule
}

// Parse parses a five-field cron spec (or a descriptor such as @daily)
// evaluated in loc. A nil loc means UTC.
func Parse(spec string, loc *time.Location) (*Schedule, error) {
	if loc == nil {
		loc = time.UTC
	}
	sched, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return &Schedule{spec: spec, location: loc, schedule: sched}, nil
}

// Next returns the first fire time strictly after t
func (s *Schedule) Next(t time.Time) time.Time {
	return s.schedule.Next(t.In(s.location))
}

// Until returns how long to wait from now until the next fire time, and that time
func (s *Schedule) Until(now time.Time) (time.Duration, time.Time) {
	next := s.Next(now)
	return next.Sub(now), next
}

// Location returns the timezone the schedule is evaluated in
func (s *Schedule) Location() *time.Location {
	return s.location
}

func (s *Schedule) String() string {
	return s.spec + " (" + s.location.String() + ")"
}
