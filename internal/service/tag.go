package service

import (
	"context"

	"go.uber.org/zap"

	"blog-service/internal/domain"
)

type TagService struct {
	tags domain.TagRepository
	log  *zap.Logger
}

func NewTagService(tags domain.TagRepository, log *zap.Logger) *TagService {
	return &TagService{tags: tags, log: log}
}

func (s *TagService) CreateTag(ctx context.Context, in CreateTagInput) (*TagResponse, error) {
	if taken, err := s.tags.ExistsByName(ctx, in.Name); err != nil {
		return nil, err
	} else if taken {
		return nil, Conflictf("tag already exists with name: %s", in.Name)
	}

	t := &domain.Tag{Name: in.Name, Description: in.Description}
	if err := s.tags.Create(ctx, t); err != nil {
		return nil, err
	}
	s.log.Info("tag created", zap.Uint("id", t.ID), zap.String("name", t.Name))
	return toTagResponse(t), nil
}

func (s *TagService) GetTagByID(ctx context.Context, id uint) (*TagResponse, error) {
	t, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NotFoundf("tag not found with ID: %d", id)
	}
	return toTagResponse(t), nil
}

func (s *TagService) GetTagByName(ctx context.Context, name string) (*TagResponse, error) {
	t, err := s.tags.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NotFoundf("tag not found with name: %s", name)
	}
	return toTagResponse(t), nil
}

func (s *TagService) GetAllTags(ctx context.Context) ([]TagResponse, error) {
	tags, err := s.tags.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, *toTagResponse(&tags[i]))
	}
	return out, nil
}

func (s *TagService) UpdateTag(ctx context.Context, id uint, in UpdateTagInput) (*TagResponse, error) {
	t, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NotFoundf("tag not found with ID: %d", id)
	}

	// 改名才查重
	if in.Name != nil && *in.Name != t.Name {
		if taken, err := s.tags.ExistsByName(ctx, *in.Name); err != nil {
			return nil, err
		} else if taken {
			return nil, Conflictf("tag already exists with name: %s", *in.Name)
		}
		t.Name = *in.Name
	}
	if in.Description != nil {
		t.Description = *in.Description
	}

	if err := s.tags.Update(ctx, t); err != nil {
		return nil, err
	}
	s.log.Info("tag updated", zap.Uint("id", t.ID))
	return toTagResponse(t), nil
}

func (s *TagService) DeleteTag(ctx context.Context, id uint) error {
	t, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return NotFoundf("tag not found with ID: %d", id)
	}
	if err := s.tags.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("tag deleted", zap.Uint("id", id))
	return nil
}
