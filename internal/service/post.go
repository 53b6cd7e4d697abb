package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"blog-service/internal/core/cache"
	"blog-service/internal/domain"
)

type PostService struct {
	posts      domain.PostRepository
	users      domain.UserRepository
	categories domain.CategoryRepository
	tags       domain.TagRepository
	log        *zap.Logger

	store    *cache.Cache // 可空；空则直读库
	storeTTL time.Duration
}

func NewPostService(
	posts domain.PostRepository,
	users domain.UserRepository,
	categories domain.CategoryRepository,
	tags domain.TagRepository,
	log *zap.Logger,
) *PostService {
	return &PostService{posts: posts, users: users, categories: categories, tags: tags, log: log}
}

// WithCache 启用单帖读缓存（写路径负责失效）
func (s *PostService) WithCache(store *cache.Cache, ttl time.Duration) *PostService {
	s.store = store
	s.storeTTL = ttl
	return s
}

func postCacheKey(id uint) string { return fmt.Sprintf("post:%d", id) }

func (s *PostService) invalidate(ctx context.Context, id uint) {
	if s.store == nil {
		return
	}
	if err := s.store.Del(ctx, postCacheKey(id)); err != nil {
		s.log.Warn("post cache invalidation failed", zap.Uint("id", id), zap.Error(err))
	}
}

// resolveTags 全量解析标签 ID；任何一个缺失都让整个操作失败
func (s *PostService) resolveTags(ctx context.Context, ids []uint) ([]domain.Tag, error) {
	uniq := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	tags, err := s.tags.FindByIDs(ctx, uniq)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(uniq) {
		return nil, Invalidf("one or more tag IDs not found")
	}
	return tags, nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*PostResponse, error) {
	author, err := s.users.FindByID(ctx, in.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, NotFoundf("author not found with ID: %d", in.AuthorID)
	}

	status := in.Status
	if status == "" {
		status = domain.PostStatusDraft
	}

	p := &domain.Post{
		Title:    in.Title,
		Content:  in.Content,
		Status:   status,
		AuthorID: author.ID,
	}

	if in.CategoryID != nil {
		cat, err := s.categories.FindByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, NotFoundf("category not found with ID: %d", *in.CategoryID)
		}
		p.CategoryID = &cat.ID
	}

	if len(in.TagIDs) > 0 {
		tags, err := s.resolveTags(ctx, in.TagIDs)
		if err != nil {
			return nil, err
		}
		p.Tags = tags
	}

	if p.Status == domain.PostStatusPublished {
		now := time.Now()
		p.PublishedAt = &now
	}

	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("post created", zap.Uint("id", p.ID), zap.String("title", p.Title))
	return s.loadPost(ctx, p.ID)
}

func (s *PostService) GetPostByID(ctx context.Context, id uint) (*PostResponse, error) {
	if s.store != nil {
		return cache.GetOrLoadJSON[PostResponse](s.store, ctx, postCacheKey(id), s.storeTTL,
			func(ctx context.Context) (*PostResponse, error) { return s.loadPost(ctx, id) })
	}
	return s.loadPost(ctx, id)
}

func (s *PostService) loadPost(ctx context.Context, id uint) (*PostResponse, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, NotFoundf("post not found with ID: %d", id)
	}
	return toPostResponse(p), nil
}

func (s *PostService) GetAllPosts(ctx context.Context) ([]PostResponse, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

func (s *PostService) GetPostsByAuthor(ctx context.Context, authorID uint) ([]PostResponse, error) {
	posts, err := s.posts.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

func (s *PostService) GetPostsByStatus(ctx context.Context, status domain.PostStatus) ([]PostResponse, error) {
	posts, err := s.posts.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

func (s *PostService) GetPostsByCategory(ctx context.Context, categoryID uint) ([]PostResponse, error) {
	posts, err := s.posts.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

func (s *PostService) GetPostsByTag(ctx context.Context, tagID uint) ([]PostResponse, error) {
	posts, err := s.posts.FindByTag(ctx, tagID)
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

func (s *PostService) UpdatePost(ctx context.Context, id uint, in UpdatePostInput) (*PostResponse, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, NotFoundf("post not found with ID: %d", id)
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.CategoryID != nil {
		cat, err := s.categories.FindByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, NotFoundf("category not found with ID: %d", *in.CategoryID)
		}
		p.CategoryID = &cat.ID
	}

	var newTags []domain.Tag
	replaceTags := in.TagIDs != nil
	if replaceTags {
		newTags, err = s.resolveTags(ctx, *in.TagIDs)
		if err != nil {
			return nil, err
		}
	}

	// 本路径上每次 DRAFT→PUBLISHED 都重新落 publishedAt，
	// 与 PublishPost 的「仅首次」语义刻意不同（见 DESIGN.md）
	if in.Status != nil && *in.Status != p.Status {
		oldStatus := p.Status
		p.Status = *in.Status
		if *in.Status == domain.PostStatusPublished && oldStatus == domain.PostStatusDraft {
			now := time.Now()
			p.PublishedAt = &now
		}
	}

	if err := s.posts.Update(ctx, p); err != nil {
		return nil, err
	}
	if replaceTags {
		if err := s.posts.ReplaceTags(ctx, p, newTags); err != nil {
			return nil, err
		}
	}
	s.invalidate(ctx, id)
	s.log.Info("post updated", zap.Uint("id", p.ID))
	return s.loadPost(ctx, id)
}

func (s *PostService) PublishPost(ctx context.Context, id uint) (*PostResponse, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, NotFoundf("post not found with ID: %d", id)
	}

	p.Publish()
	if err := s.posts.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	s.log.Info("post published", zap.Uint("id", id))
	return s.loadPost(ctx, id)
}

func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return NotFoundf("post not found with ID: %d", id)
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.log.Info("post deleted", zap.Uint("id", id))
	return nil
}

func toPostResponses(posts []domain.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, *toPostResponse(&posts[i]))
	}
	return out
}
