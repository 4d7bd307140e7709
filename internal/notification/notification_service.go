package notification

import (
	"context"
	"database/sql"
	"strings"
	"time"

	notificationerrors "aakb-wms/internal/notification/errors"
	"aakb-wms/internal/shared/apperror"
	"aakb-wms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultPlatform = "web"

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	Deliver(ctx context.Context, msg Message) (int, error)
	List(ctx context.Context, profileID string, unreadOnly bool) ([]NotificationResponse, error)
	UnreadCount(ctx context.Context, profileID string) (int64, error)
	MarkRead(ctx context.Context, profileID, id string) error
	MarkAllRead(ctx context.Context, profileID string) (int64, error)
	RegisterPushToken(ctx context.Context, profileID string, req RegisterPushTokenRequest) (PushTokenResponse, error)
	UnregisterPushToken(ctx context.Context, profileID, token string) error
	Watch(ctx context.Context, profileID string) (<-chan NotificationResponse, func(), error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	broadcaster Broadcaster
	clock       func() time.Time
	logger      *zap.Logger
}

func NewService(db *sql.DB, repo Repository, broadcaster Broadcaster, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{db: db, repo: repo, broadcaster: broadcaster, clock: time.Now, logger: l}
}

// Deliver stores one row per resolved recipient and then publishes each row
// on the recipient's realtime channel. It returns the number of rows stored.
func (s *service) Deliver(ctx context.Context, msg Message) (int, error) {
	rid := contextutil.GetRequestID(ctx)
	if strings.TrimSpace(msg.Title) == "" {
		return 0, notificationerrors.ErrInvalidMessage
	}

	ids := make([]string, 0, len(msg.RecipientIDs))
	for _, id := range msg.RecipientIDs {
		if _, err := uuid.Parse(id); err != nil {
			s.logger.Warn("skip invalid recipient id", zap.String("request_id", rid), zap.String("recipient_id", id))
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 && len(msg.RecipientRoles) == 0 {
		return 0, notificationerrors.ErrInvalidMessage
	}

	recipients, err := s.repo.ResolveRecipients(ctx, ids, msg.RecipientRoles)
	if err != nil {
		s.logger.Error("resolve recipients failed", zap.String("request_id", rid), zap.Error(err))
		return 0, apperror.StoreUnavailable(err)
	}
	if len(recipients) == 0 {
		s.logger.Warn("notification has no active recipients",
			zap.String("request_id", rid),
			zap.String("title", msg.Title),
			zap.Strings("roles", msg.RecipientRoles),
		)
		return 0, nil
	}

	now := s.clock().UTC()
	rows := make([]Notification, 0, len(recipients))
	for _, id := range recipients {
		recipientID, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		rows = append(rows, Notification{
			ID:          uuid.New(),
			RecipientID: recipientID,
			Title:       msg.Title,
			Body:        msg.Body,
			Data:        msg.Data,
			CreatedAt:   now,
		})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, apperror.StoreUnavailable(err)
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateMany(ctx, rows); err != nil {
		s.logger.Error("store notifications failed", zap.String("request_id", rid), zap.Error(err))
		return 0, apperror.StoreUnavailable(err)
	}
	if err := tx.Commit(); err != nil {
		return 0, apperror.StoreUnavailable(err)
	}

	for _, row := range rows {
		if s.broadcaster == nil {
			break
		}
		if err := s.broadcaster.Publish(ctx, row.RecipientID.String(), mapToResponse(row)); err != nil {
			s.logger.Warn("realtime publish failed",
				zap.String("request_id", rid),
				zap.String("recipient_id", row.RecipientID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("notification delivered",
		zap.String("request_id", rid),
		zap.String("title", msg.Title),
		zap.Int("recipients", len(rows)),
	)
	return len(rows), nil
}

func (s *service) List(ctx context.Context, profileID string, unreadOnly bool) ([]NotificationResponse, error) {
	if _, err := uuid.Parse(profileID); err != nil {
		return nil, notificationerrors.ErrInvalidProfileID
	}
	rows, err := s.repo.ListByRecipient(ctx, profileID, unreadOnly)
	if err != nil {
		s.logger.Error("list notifications failed", zap.String("profile_id", profileID), zap.Error(err))
		return nil, apperror.StoreUnavailable(err)
	}
	out := make([]NotificationResponse, len(rows))
	for i, row := range rows {
		out[i] = mapToResponse(row)
	}
	return out, nil
}

func (s *service) UnreadCount(ctx context.Context, profileID string) (int64, error) {
	if _, err := uuid.Parse(profileID); err != nil {
		return 0, notificationerrors.ErrInvalidProfileID
	}
	n, err := s.repo.CountUnread(ctx, profileID)
	if err != nil {
		return 0, apperror.StoreUnavailable(err)
	}
	return n, nil
}

func (s *service) MarkRead(ctx context.Context, profileID, id string) error {
	if _, err := uuid.Parse(profileID); err != nil {
		return notificationerrors.ErrInvalidProfileID
	}
	if _, err := uuid.Parse(id); err != nil {
		return notificationerrors.ErrInvalidNotificationID
	}
	found, err := s.repo.MarkRead(ctx, profileID, id, s.clock().UTC())
	if err != nil {
		s.logger.Error("mark notification read failed", zap.String("notification_id", id), zap.Error(err))
		return apperror.StoreUnavailable(err)
	}
	if !found {
		return notificationerrors.ErrNotificationNotFound
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, profileID string) (int64, error) {
	if _, err := uuid.Parse(profileID); err != nil {
		return 0, notificationerrors.ErrInvalidProfileID
	}
	n, err := s.repo.MarkAllRead(ctx, profileID, s.clock().UTC())
	if err != nil {
		s.logger.Error("mark all notifications read failed", zap.String("profile_id", profileID), zap.Error(err))
		return 0, apperror.StoreUnavailable(err)
	}
	return n, nil
}

func (s *service) RegisterPushToken(ctx context.Context, profileID string, req RegisterPushTokenRequest) (PushTokenResponse, error) {
	profileUUID, err := uuid.Parse(profileID)
	if err != nil {
		return PushTokenResponse{}, notificationerrors.ErrInvalidProfileID
	}
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return PushTokenResponse{}, notificationerrors.ErrPushTokenRequired
	}
	platform := strings.ToLower(strings.TrimSpace(req.Platform))
	if platform == "" {
		platform = defaultPlatform
	}

	t := &PushToken{
		ID:        uuid.New(),
		ProfileID: profileUUID,
		Token:     token,
		Platform:  platform,
		CreatedAt: s.clock().UTC(),
	}
	if err := s.repo.UpsertPushToken(ctx, t); err != nil {
		s.logger.Error("register push token failed", zap.String("profile_id", profileID), zap.Error(err))
		return PushTokenResponse{}, apperror.StoreUnavailable(err)
	}

	s.logger.Info("push token registered", zap.String("profile_id", profileID), zap.String("platform", platform))
	return PushTokenResponse{
		ID:        t.ID.String(),
		Token:     t.Token,
		Platform:  t.Platform,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *service) UnregisterPushToken(ctx context.Context, profileID, token string) error {
	if _, err := uuid.Parse(profileID); err != nil {
		return notificationerrors.ErrInvalidProfileID
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return notificationerrors.ErrPushTokenRequired
	}
	deleted, err := s.repo.DeletePushToken(ctx, profileID, token)
	if err != nil {
		return apperror.StoreUnavailable(err)
	}
	if !deleted {
		return notificationerrors.ErrPushTokenNotFound
	}
	return nil
}

func (s *service) Watch(ctx context.Context, profileID string) (<-chan NotificationResponse, func(), error) {
	if _, err := uuid.Parse(profileID); err != nil {
		return nil, nil, notificationerrors.ErrInvalidProfileID
	}
	ch, cancel, err := s.broadcaster.Subscribe(ctx, profileID)
	if err != nil {
		s.logger.Error("subscribe notifications failed", zap.String("profile_id", profileID), zap.Error(err))
		return nil, nil, apperror.StoreUnavailable(err)
	}
	return ch, cancel, nil
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Body:      n.Body,
		Data:      n.Data,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		v := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &v
	}
	return resp
}
