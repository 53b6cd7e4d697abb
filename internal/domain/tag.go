package domain

import (
	"context"
	"time"
)

type Tag struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:50;not null" json:"name"`
	Description string    `gorm:"size:200" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Tag) TableName() string { return "tags" }

type TagRepository interface {
	Create(ctx context.Context, t *Tag) error
	FindByID(ctx context.Context, id uint) (*Tag, error)
	FindByName(ctx context.Context, name string) (*Tag, error)
	FindByIDs(ctx context.Context, ids []uint) ([]Tag, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context) ([]Tag, error)
	Update(ctx context.Context, t *Tag) error
	Delete(ctx context.Context, id uint) error
}
