package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blog-service/internal/domain"
)

type TagRepo struct{ db *gorm.DB }

func NewTagRepo(db *gorm.DB) *TagRepo { return &TagRepo{db: db} }

func (r *TagRepo) Create(ctx context.Context, t *domain.Tag) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TagRepo) FindByID(ctx context.Context, id uint) (*domain.Tag, error) {
	var t domain.Tag
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &t, err
}

func (r *TagRepo) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	var t domain.Tag
	err := r.db.WithContext(ctx).First(&t, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &t, err
}

// FindByIDs 按主键批量查询；重复 ID 只返回一条
func (r *TagRepo) FindByIDs(ctx context.Context, ids []uint) ([]domain.Tag, error) {
	var tags []domain.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func (r *TagRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Tag{}).Where("name = ?", name).Count(&n).Error
	return n > 0, err
}

func (r *TagRepo) FindAll(ctx context.Context) ([]domain.Tag, error) {
	var tags []domain.Tag
	err := r.db.WithContext(ctx).Find(&tags).Error
	return tags, err
}

func (r *TagRepo) Update(ctx context.Context, t *domain.Tag) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TagRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Tag{}, id).Error
}
