package report

import (
	"bytes"
	"context"
	"strings"
	"time"

	"aakb-wms/internal/attendance"
	reporterrors "aakb-wms/internal/report/errors"
	"aakb-wms/internal/shared/apperror"
	"aakb-wms/internal/shared/contextutil"

	"go.uber.org/zap"
)

const maxExportDays = 93

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	DailyRoster(ctx context.Context, date string) (RosterResponse, error)
	ExportAttendance(ctx context.Context, from, to string) (*bytes.Buffer, string, error)
}

type service struct {
	repo   Repository
	policy attendance.Policy
	clock  func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, policy attendance.Policy, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, policy: policy, clock: time.Now, logger: l}
}

// DailyRoster lists every active member for date, today when empty.
func (s *service) DailyRoster(ctx context.Context, date string) (RosterResponse, error) {
	day := s.policy.LocalDate(s.clock())
	if strings.TrimSpace(date) != "" {
		d, err := s.policy.ParseDate(date)
		if err != nil {
			return RosterResponse{}, reporterrors.ErrInvalidDate
		}
		day = d
	}

	cal, members, err := s.load(ctx, day, day)
	if err != nil {
		return RosterResponse{}, err
	}

	entries := make([]RosterEntry, len(members))
	for i, m := range members {
		entries[i] = cal.entry(m, day)
	}
	resp := RosterResponse{
		Date:    day.Format(dateLayout),
		Summary: summarize(entries),
		Entries: entries,
	}
	if name, ok := cal.holiday(day); ok {
		resp.Holiday = &name
	}

	s.logger.Debug("daily roster built",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("date", resp.Date),
		zap.Int("members", len(entries)),
	)
	return resp, nil
}

func (s *service) ExportAttendance(ctx context.Context, from, to string) (*bytes.Buffer, string, error) {
	fromDate, err := s.policy.ParseDate(from)
	if err != nil {
		return nil, "", reporterrors.ErrInvalidDate
	}
	toDate, err := s.policy.ParseDate(to)
	if err != nil {
		return nil, "", reporterrors.ErrInvalidDate
	}
	if fromDate.After(toDate) || toDate.Sub(fromDate) > maxExportDays*24*time.Hour {
		return nil, "", reporterrors.ErrInvalidRange
	}

	cal, members, err := s.load(ctx, fromDate, toDate)
	if err != nil {
		return nil, "", err
	}

	buf, err := buildWorkbook(cal, members, fromDate, toDate)
	if err != nil {
		s.logger.Error("build attendance workbook failed", zap.Error(err))
		return nil, "", reporterrors.ErrExportFailed
	}

	s.logger.Info("attendance export generated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("members", len(members)),
		zap.Int("bytes", buf.Len()),
	)
	return buf, exportFilename(fromDate, toDate), nil
}

func (s *service) load(ctx context.Context, from, to time.Time) (calendar, []Member, error) {
	members, err := s.repo.ActiveMembers(ctx)
	if err != nil {
		s.logger.Error("load members failed", zap.Error(err))
		return calendar{}, nil, apperror.StoreUnavailable(err)
	}
	records, err := s.repo.AttendanceBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("load attendance failed", zap.Error(err))
		return calendar{}, nil, apperror.StoreUnavailable(err)
	}
	leaves, err := s.repo.ApprovedLeavesBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("load leaves failed", zap.Error(err))
		return calendar{}, nil, apperror.StoreUnavailable(err)
	}
	holidays, err := s.repo.HolidaysBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("load holidays failed", zap.Error(err))
		return calendar{}, nil, apperror.StoreUnavailable(err)
	}
	return newCalendar(s.policy.Location, records, leaves, holidays, from, to), members, nil
}
