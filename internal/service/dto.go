package service

import (
	"time"

	"blog-service/internal/domain"
)

// 出参形状：对外只暴露白名单字段，密码散列永不外带；
// 帖子里的嵌套 author/category/tag 不带时间戳。

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TagResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PostAuthor struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type PostCategory struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type PostTag struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type PostResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	Status      domain.PostStatus `json:"status"`
	Author      PostAuthor        `json:"author"`
	Category    *PostCategory     `json:"category,omitempty"`
	Tags        []PostTag         `json:"tags"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	PublishedAt *time.Time        `json:"publishedAt,omitempty"`
}

// 入参：更新类入参全部用指针字段，缺省即「不改」。

type CreateUserInput struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Password  string `json:"password" binding:"required,min=8,max=100"`
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
}

type UpdateUserInput struct {
	Email     *string `json:"email" binding:"omitempty,email,max=100"`
	FirstName *string `json:"firstName" binding:"omitempty,max=50"`
	LastName  *string `json:"lastName" binding:"omitempty,max=50"`
	Enabled   *bool   `json:"enabled"`
}

type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

type UpdateCategoryInput struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

type CreateTagInput struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"omitempty,max=200"`
}

type UpdateTagInput struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Description *string `json:"description" binding:"omitempty,max=200"`
}

type CreatePostInput struct {
	Title      string            `json:"title" binding:"required,max=200"`
	Content    string            `json:"content" binding:"required"`
	AuthorID   uint              `json:"authorId" binding:"required"`
	CategoryID *uint             `json:"categoryId"`
	TagIDs     []uint            `json:"tagIds"`
	Status     domain.PostStatus `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
}

type UpdatePostInput struct {
	Title      *string            `json:"title" binding:"omitempty,max=200"`
	Content    *string            `json:"content"`
	CategoryID *uint              `json:"categoryId"`
	TagIDs     *[]uint            `json:"tagIds"`
	Status     *domain.PostStatus `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
}

func toUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Enabled:   u.Enabled,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toCategoryResponse(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toTagResponse(t *domain.Tag) *TagResponse {
	return &TagResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toPostResponse(p *domain.Post) *PostResponse {
	out := &PostResponse{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		Status:  p.Status,
		Author: PostAuthor{
			ID:        p.Author.ID,
			Username:  p.Author.Username,
			Email:     p.Author.Email,
			FirstName: p.Author.FirstName,
			LastName:  p.Author.LastName,
		},
		Tags:        make([]PostTag, 0, len(p.Tags)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		PublishedAt: p.PublishedAt,
	}
	if p.Category != nil {
		out.Category = &PostCategory{
			ID:          p.Category.ID,
			Name:        p.Category.Name,
			Description: p.Category.Description,
		}
	}
	for _, t := range p.Tags {
		out.Tags = append(out.Tags, PostTag{ID: t.ID, Name: t.Name, Description: t.Description})
	}
	return out
}
