package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTag(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.tags.CreateTag(ctx, CreateTagInput{Name: "testing", Description: "test posts"})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)

	byName, err := env.tags.GetTagByName(ctx, "testing")
	require.NoError(t, err)
	assert.Equal(t, out.ID, byName.ID)

	_, err = env.tags.CreateTag(ctx, CreateTagInput{Name: "testing"})
	requireCode(t, err, 409)
}

func TestUpdateTag(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.mustCreateTag(t, "testing")
	env.mustCreateTag(t, "tls")

	taken := "tls"
	_, err := env.tags.UpdateTag(ctx, a.ID, UpdateTagInput{Name: &taken})
	requireCode(t, err, 409)

	renamed := "qa"
	out, err := env.tags.UpdateTag(ctx, a.ID, UpdateTagInput{Name: &renamed})
	require.NoError(t, err)
	assert.Equal(t, "qa", out.Name)

	// 描述永远整体覆盖
	desc := ""
	out, err = env.tags.UpdateTag(ctx, a.ID, UpdateTagInput{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "", out.Description)
}

func TestDeleteTag(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	requireCode(t, env.tags.DeleteTag(ctx, 5), 404)

	tag := env.mustCreateTag(t, "testing")
	require.NoError(t, env.tags.DeleteTag(ctx, tag.ID))
	_, err := env.tags.GetTagByID(ctx, tag.ID)
	requireCode(t, err, 404)
}
