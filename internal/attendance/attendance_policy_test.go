package attendance_test

import (
	"testing"
	"time"

	"aakb-wms/internal/attendance"
	"aakb-wms/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_IsLate(t *testing.T) {
	p := attendance.DefaultPolicy()

	assert.False(t, p.IsLate(at(2, 9, 0)))
	assert.False(t, p.IsLate(at(2, 9, 30)), "the cutoff minute itself is on time")
	assert.True(t, p.IsLate(at(2, 9, 31)))
	assert.True(t, p.IsLate(at(2, 9, 45)))

	// 04:15 UTC is 09:45 IST
	assert.True(t, p.IsLate(time.Date(2026, time.March, 2, 4, 15, 0, 0, time.UTC)))
}

func TestPolicy_ModeStatus(t *testing.T) {
	p := attendance.DefaultPolicy()
	late := at(2, 10, 0)

	assert.Equal(t, attendance.StatusField, p.ModeStatus(attendance.ModeField, late))
	assert.Equal(t, attendance.StatusEvent, p.ModeStatus(attendance.ModeEvent, late))
	assert.Equal(t, attendance.StatusLate, p.ModeStatus(attendance.ModeOffice, late))
	assert.Equal(t, attendance.StatusPresent, p.ModeStatus(attendance.ModeOffice, at(2, 8, 0)))
}

func TestPolicy_EndStatus(t *testing.T) {
	p := attendance.DefaultPolicy()
	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		elapsed  time.Duration
		approved bool
		date     time.Time
		want     attendance.Status
	}{
		{"short day", 7*time.Hour + 59*time.Minute, false, monday, attendance.StatusUndertime},
		{"short day approved", 7*time.Hour + 59*time.Minute, true, monday, attendance.StatusEarlyApproved},
		{"full day approved is still completed", 9 * time.Hour, true, monday, attendance.StatusCompleted},
		{"overtime", 10*time.Hour + time.Minute, false, monday, attendance.StatusOvertime},
		{"half day", 4 * time.Hour, false, sunday, attendance.StatusCompleted},
		{"short half day", 3*time.Hour + 59*time.Minute, false, sunday, attendance.StatusUndertime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.EndStatus(tt.elapsed, tt.approved, tt.date))
		})
	}
}

func TestPolicy_LocalDate(t *testing.T) {
	p := attendance.DefaultPolicy()

	got := p.LocalDate(time.Date(2026, time.March, 1, 18, 29, 0, 0, time.UTC))
	assert.Equal(t, "2026-03-01", got.Format("2006-01-02"))

	got = p.LocalDate(time.Date(2026, time.March, 1, 18, 30, 0, 0, time.UTC))
	assert.Equal(t, "2026-03-02", got.Format("2006-01-02"))
	assert.Equal(t, time.UTC, got.Location())
}

func TestPolicy_DayEnd(t *testing.T) {
	p := attendance.DefaultPolicy()

	got := p.DayEnd(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.March, 1, 18, 30, 0, 0, time.UTC), got)
	assert.Equal(t, "2026-03-01", p.LocalDate(got.Add(-time.Minute)).Format("2006-01-02"))
	assert.Equal(t, "2026-03-02", p.LocalDate(got).Format("2006-01-02"))
}

func TestNewPolicy(t *testing.T) {
	t.Run("no half day weekday", func(t *testing.T) {
		p, err := attendance.NewPolicy(config.AttendanceConfig{
			Timezone:      "UTC",
			LateCutoff:    "10:00",
			FullDayHours:  7.5,
			OvertimeHours: 9,
		})
		require.NoError(t, err)
		assert.Nil(t, p.HalfDayWeekday)
		assert.Equal(t, 10*time.Hour, p.LateCutoff)
		assert.Equal(t, 7*time.Hour+30*time.Minute, p.FullDayFor(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("bad timezone", func(t *testing.T) {
		_, err := attendance.NewPolicy(config.AttendanceConfig{Timezone: "Mars/Olympus", LateCutoff: "09:30"})
		assert.Error(t, err)
	})

	t.Run("bad cutoff", func(t *testing.T) {
		_, err := attendance.NewPolicy(config.AttendanceConfig{Timezone: "UTC", LateCutoff: "half past nine"})
		assert.Error(t, err)
	})
}

func TestWhatsAppURL(t *testing.T) {
	assert.Equal(t, "https://wa.me/919876543210?text=leaving+early", attendance.WhatsAppURL("+91 98765-43210", "leaving early"))
	assert.Equal(t, "https://wa.me/?text=hi", attendance.WhatsAppURL("", "hi"))
}

func TestModeBreakdown(t *testing.T) {
	m := func(v int) *int { return &v }
	got := attendance.ModeBreakdown([]attendance.TimeLog{
		{Mode: attendance.ModeOffice, DurationMinutes: m(60)},
		{Mode: attendance.ModeField, DurationMinutes: m(30)},
		{Mode: attendance.ModeOffice, DurationMinutes: m(15)},
		{Mode: attendance.ModeEvent},
	})
	assert.Equal(t, map[attendance.Mode]int{
		attendance.ModeOffice: 75,
		attendance.ModeField:  30,
		attendance.ModeEvent:  0,
	}, got)
}
