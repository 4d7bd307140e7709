package holiday

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

const (
	calendarProductID = "-//AAKB//Worker Management//EN"
	calendarName      = "AAKB Holidays"
)

// BuildCalendar renders holidays as all-day VEVENTs.
func BuildCalendar(holidays []Holiday, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetXWRCalName(calendarName)

	for _, h := range holidays {
		event := cal.AddEvent(fmt.Sprintf("%s@aakb-wms", h.ID))
		event.SetDtStampTime(stamp.UTC())
		event.SetAllDayStartAt(h.Date)
		event.SetAllDayEndAt(h.Date.AddDate(0, 0, 1))
		event.SetSummary(h.Name)
		if h.Description != "" {
			event.SetDescription(h.Description)
		}
	}
	return cal.Serialize()
}

type parsedHoliday struct {
	Date        time.Time
	Name        string
	Description string
}

// parseCalendar extracts one holiday per dated VEVENT. Events without a
// summary or start are skipped; multi-day events count for their first day.
func parseCalendar(r io.Reader, loc *time.Location) ([]parsedHoliday, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, err
	}

	var out []parsedHoliday
	for _, evt := range cal.Events() {
		summary := evt.GetProperty(ics.ComponentPropertySummary)
		if summary == nil || strings.TrimSpace(summary.Value) == "" {
			continue
		}

		start, err := evt.GetAllDayStartAt()
		if err != nil {
			if start, err = evt.GetStartAt(); err != nil {
				continue
			}
			start = start.In(loc)
		}

		var description string
		if p := evt.GetProperty(ics.ComponentPropertyDescription); p != nil {
			description = strings.TrimSpace(p.Value)
		}
		out = append(out, parsedHoliday{
			Date:        time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
			Name:        strings.TrimSpace(summary.Value),
			Description: description,
		})
	}
	return out, nil
}
