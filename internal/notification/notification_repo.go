package notification

import (
	"context"
	"database/sql"
	"time"

	"aakb-wms/internal/shared/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const listLimit = 100

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ResolveRecipients(ctx context.Context, ids, roles []string) ([]string, error)
	CreateMany(ctx context.Context, rows []Notification) error
	ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]Notification, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
	MarkRead(ctx context.Context, recipientID, id string, at time.Time) (bool, error)
	MarkAllRead(ctx context.Context, recipientID string, at time.Time) (int64, error)
	UpsertPushToken(ctx context.Context, t *PushToken) error
	DeletePushToken(ctx context.Context, profileID, token string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: database.Bind(r.db, tx)}
}

// ResolveRecipients returns the distinct active profiles that are either
// listed by id or hold one of roles.
func (r *repository) ResolveRecipients(ctx context.Context, ids, roles []string) ([]string, error) {
	db := r.db.WithContext(ctx).Model(&recipient{}).Where("is_active = ?", true)
	switch {
	case len(ids) > 0 && len(roles) > 0:
		db = db.Where("id IN ? OR role IN ?", ids, roles)
	case len(ids) > 0:
		db = db.Where("id IN ?", ids)
	case len(roles) > 0:
		db = db.Where("role IN ?", roles)
	default:
		return nil, nil
	}

	var out []string
	err := db.Order("id").Pluck("id", &out).Error
	return out, err
}

func (r *repository) CreateMany(ctx context.Context, rows []Notification) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]Notification, error) {
	db := r.db.WithContext(ctx).Where("recipient_id = ?", recipientID)
	if unreadOnly {
		db = db.Where("read_at IS NULL")
	}
	var rows []Notification
	err := db.Order("created_at DESC").Limit(listLimit).Find(&rows).Error
	return rows, err
}

func (r *repository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Count(&n).Error
	return n, err
}

// MarkRead keeps the first read time; it reports false only when the
// notification does not belong to recipientID.
func (r *repository) MarkRead(ctx context.Context, recipientID, id string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("read_at", gorm.Expr("COALESCE(read_at, ?)", at))
	return res.RowsAffected > 0, res.Error
}

func (r *repository) MarkAllRead(ctx context.Context, recipientID string, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Update("read_at", at)
	return res.RowsAffected, res.Error
}

// UpsertPushToken moves an existing token to the caller, since a device
// can change hands.
func (r *repository) UpsertPushToken(ctx context.Context, t *PushToken) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"profile_id", "platform"}),
		}).
		Create(t).Error
}

func (r *repository) DeletePushToken(ctx context.Context, profileID, token string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("profile_id = ? AND token = ?", profileID, token).
		Delete(&PushToken{})
	return res.RowsAffected > 0, res.Error
}
