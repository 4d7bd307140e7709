package holiday

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"aakb-wms/internal/domain"
	holidayerrors "aakb-wms/internal/holiday/errors"
	"aakb-wms/internal/notification"
	"aakb-wms/internal/shared/apperror"
	"aakb-wms/internal/shared/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout     = "2006-01-02"
	uniqueDateName = "uq_holidays_date"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req HolidayRequest) (HolidayResponse, error)
	List(ctx context.Context, from, to string) ([]HolidayResponse, error)
	Update(ctx context.Context, id string, req HolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	Calendar(ctx context.Context) (string, error)
	Import(ctx context.Context, r io.Reader) (ImportResult, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	notifier notification.Sink
	location *time.Location
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, notifier notification.Sink, location *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	if location == nil {
		location = time.UTC
	}
	return &service{db: db, repo: repo, notifier: notifier, location: location, logger: l}
}

func (s *service) Create(ctx context.Context, req HolidayRequest) (HolidayResponse, error) {
	h, err := s.fromRequest(req)
	if err != nil {
		return HolidayResponse{}, err
	}
	h.ID = uuid.New()

	if err := s.repo.Create(ctx, h); err != nil {
		if database.IsUniqueViolation(err, uniqueDateName) {
			return HolidayResponse{}, holidayerrors.ErrHolidayExists
		}
		s.logger.Error("create holiday failed", zap.Error(err))
		return HolidayResponse{}, apperror.StoreUnavailable(err)
	}

	s.logger.Info("create holiday success", zap.String("holiday_id", h.ID.String()), zap.String("date", req.Date))
	s.announce(ctx, []Holiday{*h})
	return mapToResponse(*h), nil
}

func (s *service) List(ctx context.Context, from, to string) ([]HolidayResponse, error) {
	var fromDate, toDate *time.Time
	if from != "" {
		d, err := parseDate(from)
		if err != nil {
			return nil, err
		}
		fromDate = &d
	}
	if to != "" {
		d, err := parseDate(to)
		if err != nil {
			return nil, err
		}
		toDate = &d
	}

	rows, err := s.repo.List(ctx, fromDate, toDate)
	if err != nil {
		s.logger.Error("list holidays failed", zap.Error(err))
		return nil, apperror.StoreUnavailable(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) Update(ctx context.Context, id string, req HolidayRequest) (HolidayResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidHolidayID
	}
	next, err := s.fromRequest(req)
	if err != nil {
		return HolidayResponse{}, err
	}

	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HolidayResponse{}, holidayerrors.ErrHolidayNotFound
		}
		return HolidayResponse{}, apperror.StoreUnavailable(err)
	}

	h.Date = next.Date
	h.Name = next.Name
	h.Description = next.Description
	if err := s.repo.Update(ctx, h); err != nil {
		if database.IsUniqueViolation(err, uniqueDateName) {
			return HolidayResponse{}, holidayerrors.ErrHolidayExists
		}
		s.logger.Error("update holiday failed", zap.String("holiday_id", id), zap.Error(err))
		return HolidayResponse{}, apperror.StoreUnavailable(err)
	}
	return mapToResponse(*h), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return holidayerrors.ErrInvalidHolidayID
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete holiday failed", zap.String("holiday_id", id), zap.Error(err))
		return apperror.StoreUnavailable(err)
	}
	if !deleted {
		return holidayerrors.ErrHolidayNotFound
	}
	return nil
}

func (s *service) Calendar(ctx context.Context) (string, error) {
	rows, err := s.repo.List(ctx, nil, nil)
	if err != nil {
		return "", apperror.StoreUnavailable(err)
	}
	return BuildCalendar(rows, time.Now()), nil
}

// Import creates a holiday for every event in an iCalendar file. Dates that
// already have a holiday, or repeat within the file, are skipped.
func (s *service) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	parsed, err := parseCalendar(r, s.location)
	if err != nil {
		s.logger.Warn("import holidays parse failed", zap.Error(err))
		return ImportResult{}, holidayerrors.ErrInvalidCalendar
	}

	result := ImportResult{Created: []HolidayResponse{}, Skipped: []string{}}
	if len(parsed) == 0 {
		return result, nil
	}

	existing, err := s.repo.List(ctx, nil, nil)
	if err != nil {
		return ImportResult{}, apperror.StoreUnavailable(err)
	}
	taken := make(map[string]bool, len(existing))
	for _, h := range existing {
		taken[h.Date.Format(dateLayout)] = true
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportResult{}, apperror.StoreUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	var created []Holiday
	for _, p := range parsed {
		key := p.Date.Format(dateLayout)
		if taken[key] {
			result.Skipped = append(result.Skipped, key)
			continue
		}
		taken[key] = true

		h := &Holiday{ID: uuid.New(), Date: p.Date, Name: p.Name, Description: p.Description}
		if err := qtx.Create(ctx, h); err != nil {
			if database.IsUniqueViolation(err, uniqueDateName) {
				return ImportResult{}, holidayerrors.ErrHolidayExists
			}
			s.logger.Error("import holiday create failed", zap.String("date", key), zap.Error(err))
			return ImportResult{}, apperror.StoreUnavailable(err)
		}
		created = append(created, *h)
		result.Created = append(result.Created, mapToResponse(*h))
	}

	if err := tx.Commit(); err != nil {
		return ImportResult{}, apperror.StoreUnavailable(err)
	}

	s.logger.Info("import holidays success",
		zap.Int("created", len(result.Created)),
		zap.Int("skipped", len(result.Skipped)),
	)
	s.announce(ctx, created)
	return result, nil
}

func (s *service) announce(ctx context.Context, holidays []Holiday) {
	if s.notifier == nil || len(holidays) == 0 {
		return
	}
	names := make([]string, len(holidays))
	for i, h := range holidays {
		names[i] = fmt.Sprintf("%s (%s)", h.Name, h.Date.Format(dateLayout))
	}
	msg := notification.Message{
		RecipientRoles: domain.AllRoles,
		Title:          "Holiday declared",
		Body:           strings.Join(names, ", "),
		Data:           map[string]any{"type": "holiday.declared", "count": len(holidays)},
	}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.logger.Warn("notification dropped", zap.String("title", msg.Title), zap.Error(err))
	}
}

func (s *service) fromRequest(req HolidayRequest) (*Holiday, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, holidayerrors.ErrNameRequired
	}
	return &Holiday{Date: date, Name: name, Description: strings.TrimSpace(req.Description)}, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, holidayerrors.ErrInvalidDate
	}
	return t, nil
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID.String(),
		Date:        h.Date.Format(dateLayout),
		Name:        h.Name,
		Description: h.Description,
	}
}

func mapToListResponse(rows []Holiday) []HolidayResponse {
	out := make([]HolidayResponse, len(rows))
	for i, h := range rows {
		out[i] = mapToResponse(h)
	}
	return out
}
