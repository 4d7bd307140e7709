package task

import (
	"context"
	"database/sql"

	"aakb-wms/internal/shared/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindMember(ctx context.Context, id string) (*Member, error)
	Create(ctx context.Context, t *Task) error
	FindAll(ctx context.Context, filter ListFilter) ([]Task, error)
	FindByID(ctx context.Context, id string, forUpdate bool) (*Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id string) (bool, error)
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

func (r *repository) FindMember(ctx context.Context, id string) (*Member, error) {
	var m Member
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Omit("Assignee").Create(t).Error
}

// FindAll orders open work first, then by due date with undated tasks last.
func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Task, error) {
	db := r.db.WithContext(ctx).Preload("Assignee")
	if filter.AssignedTo != "" {
		db = db.Where("assigned_to = ?", filter.AssignedTo)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var tasks []Task
	err := db.
		Order("CASE WHEN status = '"+StatusCompleted+"' THEN 1 ELSE 0 END").
		Order("due_date ASC NULLS LAST").
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) FindByID(ctx context.Context, id string, forUpdate bool) (*Task, error) {
	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	} else {
		db = db.Preload("Assignee")
	}
	var t Task
	err := db.First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) Update(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Omit("Assignee").Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&Task{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
