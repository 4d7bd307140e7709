package report

import (
	"time"

	"aakb-wms/internal/attendance"
	"aakb-wms/internal/holiday"
	"aakb-wms/internal/leave"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// calendar indexes one date range of attendance, leave and holidays.
type calendar struct {
	location *time.Location
	records  map[string]attendance.Record
	leaves   map[string]leave.Leave
	holidays map[string]string
}

func newCalendar(loc *time.Location, records []attendance.Record, leaves []leave.Leave, holidays []holiday.Holiday, from, to time.Time) calendar {
	cal := calendar{
		location: loc,
		records:  make(map[string]attendance.Record, len(records)),
		leaves:   make(map[string]leave.Leave),
		holidays: make(map[string]string, len(holidays)),
	}
	for _, r := range records {
		cal.records[dayKey(r.WorkerID.String(), r.Date)] = r
	}
	for _, l := range leaves {
		start, end := l.StartDate, l.EndDate
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			cal.leaves[dayKey(l.WorkerID.String(), d)] = l
		}
	}
	for _, h := range holidays {
		cal.holidays[h.Date.Format(dateLayout)] = h.Name
	}
	return cal
}

func dayKey(workerID string, date time.Time) string {
	return workerID + "|" + date.Format(dateLayout)
}

func (c calendar) holiday(date time.Time) (string, bool) {
	name, ok := c.holidays[date.Format(dateLayout)]
	return name, ok
}

// entry derives one roster line. A member with no record is absent even on
// leave or a holiday; the flags say why.
func (c calendar) entry(m Member, date time.Time) RosterEntry {
	e := RosterEntry{
		WorkerID: m.ID.String(),
		FullName: m.FullName,
		Role:     m.Role,
		Status:   string(attendance.StatusAbsent),
	}

	key := dayKey(e.WorkerID, date)
	if l, ok := c.leaves[key]; ok {
		e.OnLeave = true
		e.LeaveType = l.LeaveType
	}

	r, ok := c.records[key]
	if !ok || r.CheckInTime == nil {
		return e
	}
	e.Status = string(r.Status)
	e.Mode = string(r.Mode)
	e.CheckIn = c.clock(r.CheckInTime)
	e.CheckOut = c.clock(r.CheckOutTime)
	e.TotalMinutes = r.TotalMinutes
	e.EarlyExitRequested = r.EarlyExitRequested
	e.EarlyExitApproved = r.EarlyExitApproved
	return e
}

func (c calendar) clock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.In(c.location).Format(timeLayout)
	return &v
}

func summarize(entries []RosterEntry) map[string]int {
	summary := map[string]int{"total": len(entries)}
	for _, e := range entries {
		summary[e.Status]++
		if e.OnLeave {
			summary["on_leave"]++
		}
	}
	return summary
}
