package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blog-service/internal/domain"
)

type PostRepo struct{ db *gorm.DB }

func NewPostRepo(db *gorm.DB) *PostRepo { return &PostRepo{db: db} }

func (r *PostRepo) withPreloads(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Author").Preload("Category").Preload("Tags")
}

func (r *PostRepo) Create(ctx context.Context, p *domain.Post) error {
	// Create 会顺带写入 post_tags 关联行
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostRepo) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	var p domain.Post
	err := r.withPreloads(ctx).First(&p, "posts.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *PostRepo) FindAll(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	err := r.withPreloads(ctx).Find(&posts).Error
	return posts, err
}

func (r *PostRepo) FindByAuthor(ctx context.Context, authorID uint) ([]domain.Post, error) {
	var posts []domain.Post
	err := r.withPreloads(ctx).Where("author_id = ?", authorID).Find(&posts).Error
	return posts, err
}

func (r *PostRepo) FindByStatus(ctx context.Context, status domain.PostStatus) ([]domain.Post, error) {
	var posts []domain.Post
	err := r.withPreloads(ctx).Where("status = ?", status).Find(&posts).Error
	return posts, err
}

func (r *PostRepo) FindByCategory(ctx context.Context, categoryID uint) ([]domain.Post, error) {
	var posts []domain.Post
	err := r.withPreloads(ctx).Where("category_id = ?", categoryID).Find(&posts).Error
	return posts, err
}

func (r *PostRepo) FindByTag(ctx context.Context, tagID uint) ([]domain.Post, error) {
	var posts []domain.Post
	err := r.withPreloads(ctx).
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id = ?", tagID).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepo) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Post{}).Where("author_id = ?", authorID).Count(&n).Error
	return n, err
}

// Update 只写本表字段；标签集合走 ReplaceTags
func (r *PostRepo) Update(ctx context.Context, p *domain.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

// ReplaceTags 整体替换 post_tags 关联（不合并）
func (r *PostRepo) ReplaceTags(ctx context.Context, p *domain.Post, tags []domain.Tag) error {
	assoc := r.db.WithContext(ctx).Model(p).Association("Tags")
	var err error
	if len(tags) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(tags)
	}
	if err != nil {
		return err
	}
	p.Tags = tags
	return nil
}

func (r *PostRepo) Delete(ctx context.Context, id uint) error {
	// Select(Associations) 连同 post_tags 关联行一起清掉
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(&domain.Post{ID: id}).Error
}
