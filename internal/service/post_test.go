package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/domain"
)

func TestCreatePostDraft(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.mustCreateUser(t, "alice")
	cat := env.mustCreateCategory(t, "go")
	tagA := env.mustCreateTag(t, "testing")
	tagB := env.mustCreateTag(t, "tls")

	out, err := env.posts.CreatePost(ctx, CreatePostInput{
		Title:      "hello",
		Content:    "world",
		AuthorID:   author.ID,
		CategoryID: &cat.ID,
		TagIDs:     []uint{tagA.ID, tagB.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PostStatusDraft, out.Status)
	assert.Nil(t, out.PublishedAt)
	assert.Equal(t, author.ID, out.Author.ID)
	assert.Equal(t, "alice", out.Author.Username)
	require.NotNil(t, out.Category)
	assert.Equal(t, "go", out.Category.Name)
	assert.Len(t, out.Tags, 2)
}

func TestCreatePostPublishedStampsImmediately(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.mustCreateUser(t, "alice")

	out, err := env.posts.CreatePost(ctx, CreatePostInput{
		Title: "hello", Content: "world", AuthorID: author.ID,
		Status: domain.PostStatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PostStatusPublished, out.Status)
	require.NotNil(t, out.PublishedAt)
}

func TestCreatePostUnresolvedReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.mustCreateUser(t, "alice")

	_, err := env.posts.CreatePost(ctx, CreatePostInput{
		Title: "t", Content: "c", AuthorID: 999,
	})
	requireCode(t, err, 404)

	badCat := uint(999)
	_, err = env.posts.CreatePost(ctx, CreatePostInput{
		Title: "t", Content: "c", AuthorID: author.ID, CategoryID: &badCat,
	})
	requireCode(t, err, 404)
}

func TestCreatePostTagSetAllOrNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.mustCreateUser(t, "alice")
	tagA := env.mustCreateTag(t, "a")
	tagB := env.mustCreateTag(t, "b")

	// 三个里混一个坏 ID，整个操作失败
	_, err := env.posts.CreatePost(ctx, CreatePostInput{
		Title: "t", Content: "c", AuthorID: author.ID,
		TagIDs: []uint{tagA.ID, tagB.ID, 999},
	})
	requireCode(t, err, 400)

	// 没有半挂的帖子留下来
	all, err := env.posts.GetAllPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetPostFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.mustCreateUser(t, "alice")
	bob := env.mustCreateUser(t, "bob")
	cat := env.mustCreateCategory(t, "go")
	tag := env.mustCreateTag(t, "testing")

	_, err := env.posts.CreatePost(ctx, CreatePostInput{
		Title: "p1", Content: "c", AuthorID: alice.ID,
		CategoryID: &cat.ID, TagIDs: []uint{tag.ID},
		Status: domain.PostStatusPublished,
	})
	require.NoError(t, err)
	_, err = env.posts.CreatePost(ctx, CreatePostInput{
		Title: "p2", Content: "c", AuthorID: bob.ID,
	})
	require.NoError(t, err)

	byAuthor, err := env.posts.GetPostsByAuthor(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "p1", byAuthor[0].Title)

	published, err := env.posts.GetPostsByStatus(ctx, domain.PostStatusPublished)
	require.NoError(t, err)
	assert.Len(t, published, 1)

	drafts, err := env.posts.GetPostsByStatus(ctx, domain.PostStatusDraft)
	require.NoError(t, err)
	assert.Len(t, drafts, 1)

	byCategory, err := env.posts.GetPostsByCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	byTag, err := env.posts.GetPostsByTag(ctx, tag.ID)
	require.NoError(t, err)
	assert.Len(t, byTag, 1)

	_, err = env.posts.GetPostByID(ctx, 999)
	requireCode(t, err, 404)
}

func TestUpdatePostPatchSemantics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.mustCreateUser(t, "alice")
	tag := env.mustCreateTag(t, "testing")

	created, err := env.posts.CreatePost(ctx, CreatePostInput{
		Title: "hello", Content: "world", AuthorID: author.ID, TagIDs: []uint{tag.ID},
	})
	require.NoError(t, err)

	// 空 patch 全部保持
	same, err := env.posts.UpdatePost(ctx, created.ID, UpdatePostInput{})
	require.NoError(t, err)
	assert.Equal(t, created.Title, same.Title)
	assert.Equal(t, created.Content, same.Content)
	assert.Equal(t, created.Status, same.Status)
	assert.Len(t, same.Tags, 1)

	title := "renamed"
	out, err := env.posts.UpdatePost(ctx, created.ID, UpdatePostInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed", out.Title)
	assert.Equal(t, "world", out.Content)
}

func TestUpdatePostReplacesTagsWholesale(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.mustCreateUser(t, "alice")
	tagA := env.mustCreateTag(t, "a")
	tagB := env.mustCreateTag(t, "b")
	tagC := env.mustCreateTag(t, "c")

	created, err := env.posts.CreatePost(ctx, CreatePostInput{
		Title: "t", Content: "c", AuthorID: author.ID,
		TagIDs: []uint{tagA.ID, tagB.ID},
	})
	require.NoError(t, err)

	// 整体替换，不是合并
	newSet := []uint{tagC.ID}
	out, err := env.posts.UpdatePost(ctx, created.ID, UpdatePostInput{TagIDs: &newSet})
	require.NoError(t, err)
	require.Len(t, out.Tags, 1)
	assert.Equal(t, "c", out.Tags[0].Name)

	// 坏 ID 让整个更新失败，原集合不动
	bad := []uint{tagA.ID, 999}
	_, err = env.posts.UpdatePost(ctx, created.ID, UpdatePostInput{TagIDs: &bad})
	requireCode(t, err, 400)
	cur, err := env.posts.GetPostByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, cur.Tags, 1)

	// 空集合清空
	empty := []uint{}
	out, err = env.posts.UpdatePost(ctx, created.ID, UpdatePostInput{TagIDs: &empty})
	require.NoError(t, err)
	assert.Empty(t, out.Tags)
}

func TestUpdatePostStatusTransitions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.mustCreateUser(t, "alice")

	created, err := env.posts.CreatePost(ctx, CreatePostInput{
		Title: "t", Content: "c", AuthorID: author.ID,
	})
	require.NoError(t, err)
	require.Nil(t, created.PublishedAt)

	pub := domain.PostStatusPublished
	draft := domain.PostStatusDraft

	// DRAFT→PUBLISHED 落时间戳
	v1, err := env.posts.UpdatePost(ctx, created.ID, UpdatePostInput{Status: &pub})
	require.NoError(t, err)
	require.NotNil(t, v1.PublishedAt)
	first := *v1.PublishedAt

	// 回 DRAFT：publishedAt 不清
	v2, err := env.posts.UpdatePost(ctx, created.ID, UpdatePostInput{Status: &draft})
	require.NoError(t, err)
	require.NotNil(t, v2.PublishedAt)
	assert.Equal(t, first, *v2.PublishedAt)

	// 更新路径上再次 DRAFT→PUBLISHED 会重新落戳
	time.Sleep(10 * time.Millisecond)
	v3, err := env.posts.UpdatePost(ctx, created.ID, UpdatePostInput{Status: &pub})
	require.NoError(t, err)
	require.NotNil(t, v3.PublishedAt)
	assert.True(t, v3.PublishedAt.After(first))
}

func TestPublishPostIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.mustCreateUser(t, "alice")

	created, err := env.posts.CreatePost(ctx, CreatePostInput{
		Title: "t", Content: "c", AuthorID: author.ID,
	})
	require.NoError(t, err)

	v1, err := env.posts.PublishPost(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, v1.PublishedAt)
	first := *v1.PublishedAt

	time.Sleep(10 * time.Millisecond)
	v2, err := env.posts.PublishPost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PostStatusPublished, v2.Status)
	assert.Equal(t, first, *v2.PublishedAt)

	// 回 DRAFT 后走 publish 动作也不重置时间戳
	draft := domain.PostStatusDraft
	_, err = env.posts.UpdatePost(ctx, created.ID, UpdatePostInput{Status: &draft})
	require.NoError(t, err)
	v3, err := env.posts.PublishPost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, first, *v3.PublishedAt)

	_, err = env.posts.PublishPost(ctx, 999)
	requireCode(t, err, 404)
}

func TestDeletePost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	requireCode(t, env.posts.DeletePost(ctx, 3), 404)

	author := env.mustCreateUser(t, "alice")
	tag := env.mustCreateTag(t, "testing")
	created, err := env.posts.CreatePost(ctx, CreatePostInput{
		Title: "t", Content: "c", AuthorID: author.ID, TagIDs: []uint{tag.ID},
	})
	require.NoError(t, err)

	require.NoError(t, env.posts.DeletePost(ctx, created.ID))
	_, err = env.posts.GetPostByID(ctx, created.ID)
	requireCode(t, err, 404)

	// 标签本体不受影响
	_, err = env.tags.GetTagByID(ctx, tag.ID)
	require.NoError(t, err)
}
