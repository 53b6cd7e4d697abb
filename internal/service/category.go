package service

import (
	"context"

	"go.uber.org/zap"

	"blog-service/internal/domain"
)

type CategoryService struct {
	categories domain.CategoryRepository
	log        *zap.Logger
}

func NewCategoryService(categories domain.CategoryRepository, log *zap.Logger) *CategoryService {
	return &CategoryService{categories: categories, log: log}
}

func (s *CategoryService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*CategoryResponse, error) {
	if taken, err := s.categories.ExistsByName(ctx, in.Name); err != nil {
		return nil, err
	} else if taken {
		return nil, Conflictf("category already exists with name: %s", in.Name)
	}

	c := &domain.Category{Name: in.Name, Description: in.Description}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("category created", zap.Uint("id", c.ID), zap.String("name", c.Name))
	return toCategoryResponse(c), nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) (*CategoryResponse, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, NotFoundf("category not found with ID: %d", id)
	}
	return toCategoryResponse(c), nil
}

func (s *CategoryService) GetCategoryByName(ctx context.Context, name string) (*CategoryResponse, error) {
	c, err := s.categories.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, NotFoundf("category not found with name: %s", name)
	}
	return toCategoryResponse(c), nil
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]CategoryResponse, error) {
	cats, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryResponse, 0, len(cats))
	for i := range cats {
		out = append(out, *toCategoryResponse(&cats[i]))
	}
	return out, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, in UpdateCategoryInput) (*CategoryResponse, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, NotFoundf("category not found with ID: %d", id)
	}

	// 改名才查重
	if in.Name != nil && *in.Name != c.Name {
		if taken, err := s.categories.ExistsByName(ctx, *in.Name); err != nil {
			return nil, err
		} else if taken {
			return nil, Conflictf("category already exists with name: %s", *in.Name)
		}
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}

	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("category updated", zap.Uint("id", c.ID))
	return toCategoryResponse(c), nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return NotFoundf("category not found with ID: %d", id)
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("category deleted", zap.Uint("id", id))
	return nil
}
