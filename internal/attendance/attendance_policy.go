package attendance

import (
	"fmt"
	"math"
	"strings"
	"time"

	"aakb-wms/internal/config"
)

const dateLayout = "2006-01-02"

// Policy holds the status thresholds. Instants are compared in Location.
type Policy struct {
	Location       *time.Location
	LateCutoff     time.Duration // offset from local midnight
	FullDay        time.Duration
	Overtime       time.Duration
	HalfDayWeekday *time.Weekday
	HalfDay        time.Duration
	OverseerPhone  string
}

func NewPolicy(cfg config.AttendanceConfig) (Policy, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return Policy{}, fmt.Errorf("attendance timezone: %w", err)
	}
	cutoff, err := time.Parse("15:04", cfg.LateCutoff)
	if err != nil {
		return Policy{}, fmt.Errorf("attendance late cutoff: %w", err)
	}

	p := Policy{
		Location:      loc,
		LateCutoff:    time.Duration(cutoff.Hour())*time.Hour + time.Duration(cutoff.Minute())*time.Minute,
		FullDay:       hours(cfg.FullDayHours),
		Overtime:      hours(cfg.OvertimeHours),
		HalfDay:       hours(cfg.HalfDayHours),
		OverseerPhone: strings.TrimSpace(cfg.OverseerPhone),
	}
	if wd, ok := parseWeekday(cfg.HalfDayWeekday); ok && p.HalfDay > 0 {
		p.HalfDayWeekday = &wd
	}
	return p, nil
}

// DefaultPolicy is the organization's standard: Asia/Kolkata, late after
// 09:30, 8h day, overtime past 10h, 4h on Sundays.
func DefaultPolicy() Policy {
	p, err := NewPolicy(config.AttendanceConfig{
		Timezone:       "Asia/Kolkata",
		LateCutoff:     "09:30",
		FullDayHours:   8,
		OvertimeHours:  10,
		HalfDayWeekday: "sunday",
		HalfDayHours:   4,
	})
	if err != nil {
		panic(err)
	}
	return p
}

func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

func parseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == s {
			return d, true
		}
	}
	return 0, false
}

// LocalDate returns the organization-local calendar day of t as 00:00 UTC.
func (p Policy) LocalDate(t time.Time) time.Time {
	y, m, d := t.In(p.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayEnd is the local midnight that closes the calendar day date.
func (p Policy) DayEnd(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, p.Location).UTC()
}

func (p Policy) ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

func (p Policy) IsLate(checkIn time.Time) bool {
	local := checkIn.In(p.Location)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, p.Location)
	return local.Sub(midnight) > p.LateCutoff
}

func (p Policy) CheckInStatus(checkIn time.Time) Status {
	if p.IsLate(checkIn) {
		return StatusLate
	}
	return StatusPresent
}

// ModeStatus is the status a record takes while in mode.
func (p Policy) ModeStatus(mode Mode, checkIn time.Time) Status {
	switch mode {
	case ModeField:
		return StatusField
	case ModeEvent:
		return StatusEvent
	default:
		return p.CheckInStatus(checkIn)
	}
}

// FullDayFor returns the full-day threshold for the given calendar date.
func (p Policy) FullDayFor(date time.Time) time.Duration {
	if p.HalfDayWeekday != nil && date.Weekday() == *p.HalfDayWeekday {
		return p.HalfDay
	}
	return p.FullDay
}

// EndStatus derives the final status of a day from its elapsed time.
func (p Policy) EndStatus(elapsed time.Duration, approved bool, date time.Time) Status {
	full := p.FullDayFor(date)
	switch {
	case elapsed < full && approved:
		return StatusEarlyApproved
	case elapsed < full:
		return StatusUndertime
	case elapsed > p.Overtime:
		return StatusOvertime
	default:
		return StatusCompleted
	}
}

func DurationMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}
