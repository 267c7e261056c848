package repository

import (
	"context"

	"gorm.io/gorm"

	"tasktracker/internal/model"
)

// TagRepository handles CRUD for tags.
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) FindAll(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, wrapErr("list tags", err)
	}
	return tags, nil
}

func (r *TagRepository) FindByID(ctx context.Context, id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, wrapErr("find tag", err)
	}
	return &tag, nil
}

func (r *TagRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Tag{}).
		Where("name = ?", name).Count(&count).Error; err != nil {
		return false, wrapErr("count tags by name", err)
	}
	return count > 0, nil
}

func (r *TagRepository) Create(ctx context.Context, tag *model.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return wrapErr("create tag", err)
	}
	return nil
}

func (r *TagRepository) Save(ctx context.Context, tag *model.Tag) error {
	if err := r.db.WithContext(ctx).Save(tag).Error; err != nil {
		return wrapErr("save tag", err)
	}
	return nil
}

// Delete removes the tag and its task associations.
func (r *TagRepository) Delete(ctx context.Context, tag *model.Tag) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_tags WHERE tag_id = ?", tag.ID).Error; err != nil {
			return err
		}
		return tx.Delete(tag).Error
	})
	if err != nil {
		return wrapErr("delete tag", err)
	}
	return nil
}
