package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"blog-service/internal/domain"
	"blog-service/internal/repo"
)

type testEnv struct {
	db         *gorm.DB
	users      *UserService
	categories *CategoryService
	tags       *TagService
	posts      *PostService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库：多连接各是一个库，必须收敛到 1
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Tag{}, &domain.Post{}))

	log := zap.NewNop()
	userRepo := repo.NewUserRepo(db)
	postRepo := repo.NewPostRepo(db)
	categoryRepo := repo.NewCategoryRepo(db)
	tagRepo := repo.NewTagRepo(db)

	return &testEnv{
		db:         db,
		users:      NewUserService(userRepo, postRepo, log),
		categories: NewCategoryService(categoryRepo, log),
		tags:       NewTagService(tagRepo, log),
		posts:      NewPostService(postRepo, userRepo, categoryRepo, tagRepo, log),
	}
}

func (e *testEnv) mustCreateUser(t *testing.T, username string) *UserResponse {
	t.Helper()
	u, err := e.users.CreateUser(context.Background(), CreateUserInput{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "secret-pass-123",
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)
	return u
}

func (e *testEnv) mustCreateCategory(t *testing.T, name string) *CategoryResponse {
	t.Helper()
	c, err := e.categories.CreateCategory(context.Background(), CreateCategoryInput{Name: name})
	require.NoError(t, err)
	return c
}

func (e *testEnv) mustCreateTag(t *testing.T, name string) *TagResponse {
	t.Helper()
	tag, err := e.tags.CreateTag(context.Background(), CreateTagInput{Name: name})
	require.NoError(t, err)
	return tag
}

func requireCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, CodeOf(err), "unexpected error code for: %v", err)
}
