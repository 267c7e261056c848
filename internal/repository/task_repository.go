package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tasktracker/internal/model"
)

// TaskRepository handles CRUD and filter queries for tasks. Every lookup
// carries the owning user id in the WHERE clause, so a task owned by someone
// else is indistinguishable from a missing one.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) scoped(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Category").Preload("Tags").
		Where("tasks.user_id = ?", userID)
}

func (r *TaskRepository) FindByUser(ctx context.Context, userID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.scoped(ctx, userID).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, wrapErr("list tasks", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByIDForUser(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := r.scoped(ctx, userID).Where("tasks.id = ?", taskID).First(&task).Error; err != nil {
		return nil, wrapErr("find task", err)
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return wrapErr("create task", err)
	}
	return nil
}

// Save overwrites the task row and replaces its tag set wholesale. Both
// writes commit or fail as one unit.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task, tags []model.Tag) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assoc := tx.Model(task).Association("Tags")
		if len(tags) == 0 {
			if err := assoc.Clear(); err != nil {
				return err
			}
		} else if err := assoc.Replace(tags); err != nil {
			return err
		}
		task.Tags = tags
		// The tag set was replaced above and the category is written through
		// its FK column, so association auto-saving is skipped entirely.
		return tx.Omit(clause.Associations).Save(task).Error
	})
	if err != nil {
		return wrapErr("save task", err)
	}
	return nil
}

// Delete removes a task and its tag associations, scoped to the owner.
func (r *TaskRepository) Delete(ctx context.Context, task *model.Task) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_tags WHERE task_id = ?", task.ID).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", task.UserID).Delete(&model.Task{}, task.ID).Error
	})
	if err != nil {
		return wrapErr("delete task", err)
	}
	return nil
}

func (r *TaskRepository) FindByUserAndStatus(ctx context.Context, userID uint, status model.Status) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.scoped(ctx, userID).Where("tasks.status = ?", status).
		Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, wrapErr("list tasks by status", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByUserAndPriority(ctx context.Context, userID uint, priority model.Priority) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.scoped(ctx, userID).Where("tasks.priority = ?", priority).
		Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, wrapErr("list tasks by priority", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByUserAndCategory(ctx context.Context, userID, categoryID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.scoped(ctx, userID).Where("tasks.category_id = ?", categoryID).
		Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, wrapErr("list tasks by category", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByUserAndTag(ctx context.Context, userID, tagID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.scoped(ctx, userID).
		Joins("JOIN task_tags ON task_tags.task_id = tasks.id").
		Where("task_tags.tag_id = ?", tagID).
		Order("tasks.id ASC").Find(&tasks).Error; err != nil {
		return nil, wrapErr("list tasks by tag", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByUserDueBetween(ctx context.Context, userID uint, start, end time.Time) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.scoped(ctx, userID).Where("tasks.due_date BETWEEN ? AND ?", start, end).
		Order("due_date ASC").Find(&tasks).Error; err != nil {
		return nil, wrapErr("list tasks due between", err)
	}
	return tasks, nil
}
