package report

import (
	"bytes"
	"fmt"
	"time"

	"aakb-wms/internal/attendance"

	"github.com/xuri/excelize/v2"
)

const (
	attendanceSheet = "Attendance"
	summarySheet    = "Summary"
)

var (
	attendanceHeader = []any{"Date", "Worker", "Role", "Status", "Mode", "Check in", "Check out", "Minutes", "Early exit", "Leave", "Holiday"}
	summaryHeader    = []any{"Worker", "Role", "Days worked", "Late", "Undertime", "Overtime", "Early approved", "Absent", "Leave days", "Hours"}
)

type memberTotals struct {
	worked, late, undertime, overtime, earlyApproved, absent, leaveDays, minutes int
}

// buildWorkbook writes one row per member per date plus a per-member summary.
// Absent days on leave or holidays are not counted as absences.
func buildWorkbook(cal calendar, members []Member, from, to time.Time) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(attendanceSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	if err := writeRow(f, attendanceSheet, 1, attendanceHeader); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(attendanceSheet, "A1", cell(len(attendanceHeader), 1), headerStyle)
	_ = f.SetPanes(attendanceSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
	_ = f.SetColWidth(attendanceSheet, "A", "A", 12)
	_ = f.SetColWidth(attendanceSheet, "B", "B", 24)
	_ = f.SetColWidth(attendanceSheet, "C", "K", 14)

	totals := make([]memberTotals, len(members))
	row := 2
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		holidayName, isHoliday := cal.holiday(d)
		for i, m := range members {
			e := cal.entry(m, d)
			values := []any{
				d.Format(dateLayout), e.FullName, e.Role, e.Status, e.Mode,
				deref(e.CheckIn), deref(e.CheckOut), minutesOrBlank(e.TotalMinutes),
				earlyExitLabel(e), e.LeaveType, holidayName,
			}
			if err := writeRow(f, attendanceSheet, row, values); err != nil {
				return nil, err
			}
			row++
			totals[i].add(e, isHoliday)
		}
	}

	if err := writeRow(f, summarySheet, 1, summaryHeader); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(summarySheet, "A1", cell(len(summaryHeader), 1), headerStyle)
	_ = f.SetColWidth(summarySheet, "A", "A", 24)
	_ = f.SetColWidth(summarySheet, "B", "J", 14)
	for i, m := range members {
		t := totals[i]
		values := []any{
			m.FullName, m.Role, t.worked, t.late, t.undertime, t.overtime,
			t.earlyApproved, t.absent, t.leaveDays, float64(t.minutes) / 60,
		}
		if err := writeRow(f, summarySheet, i+2, values); err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (t *memberTotals) add(e RosterEntry, isHoliday bool) {
	if e.OnLeave {
		t.leaveDays++
	}
	switch attendance.Status(e.Status) {
	case attendance.StatusAbsent:
		if !e.OnLeave && !isHoliday {
			t.absent++
		}
		return
	case attendance.StatusLate:
		t.late++
	case attendance.StatusUndertime:
		t.undertime++
	case attendance.StatusOvertime:
		t.overtime++
	case attendance.StatusEarlyApproved:
		t.earlyApproved++
	}
	t.worked++
	if e.TotalMinutes != nil {
		t.minutes += *e.TotalMinutes
	}
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	return f.SetSheetRow(sheet, cell(1, row), &values)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func minutesOrBlank(m *int) any {
	if m == nil {
		return ""
	}
	return *m
}

func earlyExitLabel(e RosterEntry) string {
	switch {
	case e.EarlyExitApproved:
		return "approved"
	case e.EarlyExitRequested:
		return "requested"
	default:
		return ""
	}
}

func exportFilename(from, to time.Time) string {
	return fmt.Sprintf("attendance_%s_%s.xlsx", from.Format(dateLayout), to.Format(dateLayout))
}
