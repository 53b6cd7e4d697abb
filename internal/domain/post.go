package domain

import (
	"context"
	"time"
)

type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
)

func (s PostStatus) Valid() bool {
	return s == PostStatusDraft || s == PostStatusPublished
}

type Post struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Status      PostStatus `gorm:"size:20;not null;default:DRAFT" json:"status"`
	AuthorID    uint       `gorm:"not null;index" json:"authorId"`
	Author      User       `gorm:"foreignKey:AuthorID" json:"-"`
	CategoryID  *uint      `gorm:"index" json:"categoryId,omitempty"`
	Category    *Category  `gorm:"foreignKey:CategoryID" json:"-"`
	Tags        []Tag      `gorm:"many2many:post_tags" json:"-"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

func (Post) TableName() string { return "posts" }

// Publish 置为已发布；publishedAt 只在首次发布时落值
func (p *Post) Publish() {
	p.Status = PostStatusPublished
	if p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
}

type PostRepository interface {
	Create(ctx context.Context, p *Post) error
	FindByID(ctx context.Context, id uint) (*Post, error)
	FindAll(ctx context.Context) ([]Post, error)
	FindByAuthor(ctx context.Context, authorID uint) ([]Post, error)
	FindByStatus(ctx context.Context, status PostStatus) ([]Post, error)
	FindByCategory(ctx context.Context, categoryID uint) ([]Post, error)
	FindByTag(ctx context.Context, tagID uint) ([]Post, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
	Update(ctx context.Context, p *Post) error
	ReplaceTags(ctx context.Context, p *Post, tags []Tag) error
	Delete(ctx context.Context, id uint) error
}
