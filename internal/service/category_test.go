package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.categories.CreateCategory(ctx, CreateCategoryInput{
		Name: "go", Description: "all things go",
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)

	byName, err := env.categories.GetCategoryByName(ctx, "go")
	require.NoError(t, err)
	assert.Equal(t, out.ID, byName.ID)

	_, err = env.categories.CreateCategory(ctx, CreateCategoryInput{Name: "go"})
	requireCode(t, err, 409)
}

func TestGetCategoryNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.categories.GetCategoryByID(ctx, 7)
	requireCode(t, err, 404)
	_, err = env.categories.GetCategoryByName(ctx, "nope")
	requireCode(t, err, 404)
}

func TestUpdateCategory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.mustCreateCategory(t, "go")
	env.mustCreateCategory(t, "rust")

	// 空 patch 不改
	same, err := env.categories.UpdateCategory(ctx, a.ID, UpdateCategoryInput{})
	require.NoError(t, err)
	assert.Equal(t, "go", same.Name)

	// 改成已占用的名字要冲突
	taken := "rust"
	_, err = env.categories.UpdateCategory(ctx, a.ID, UpdateCategoryInput{Name: &taken})
	requireCode(t, err, 409)

	// 同名提交不算改名
	keep := "go"
	_, err = env.categories.UpdateCategory(ctx, a.ID, UpdateCategoryInput{Name: &keep})
	require.NoError(t, err)

	desc := "systems programming"
	out, err := env.categories.UpdateCategory(ctx, a.ID, UpdateCategoryInput{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "go", out.Name)
	assert.Equal(t, desc, out.Description)
}

func TestDeleteCategory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	requireCode(t, env.categories.DeleteCategory(ctx, 11), 404)

	c := env.mustCreateCategory(t, "go")
	require.NoError(t, env.categories.DeleteCategory(ctx, c.ID))
	_, err := env.categories.GetCategoryByID(ctx, c.ID)
	requireCode(t, err, 404)
}

func TestListCategories(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.mustCreateCategory(t, "go")
	env.mustCreateCategory(t, "rust")

	all, err := env.categories.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
