package service

import (
	"context"

	"go.uber.org/zap"

	"blog-service/internal/domain"
	"blog-service/pkg/utils"
)

type UserService struct {
	users domain.UserRepository
	posts domain.PostRepository
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, posts domain.PostRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, posts: posts, log: log}
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*UserResponse, error) {
	if taken, err := s.users.ExistsByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, Conflictf("username already exists: %s", in.Username)
	}
	if taken, err := s.users.ExistsByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, Conflictf("email already exists: %s", in.Email)
	}

	u := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Enabled:      true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user created", zap.Uint("id", u.ID), zap.String("username", u.Username))
	return toUserResponse(u), nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*UserResponse, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NotFoundf("user not found with ID: %d", id)
	}
	return toUserResponse(u), nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*UserResponse, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NotFoundf("user not found with username: %s", username)
	}
	return toUserResponse(u), nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*UserResponse, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NotFoundf("user not found with ID: %d", id)
	}

	// 邮箱只有真的变化时才查重
	if in.Email != nil && *in.Email != u.Email {
		if taken, err := s.users.ExistsByEmail(ctx, *in.Email); err != nil {
			return nil, err
		} else if taken {
			return nil, Conflictf("email already exists: %s", *in.Email)
		}
		u.Email = *in.Email
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Enabled != nil {
		u.Enabled = *in.Enabled
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user updated", zap.Uint("id", u.ID))
	return toUserResponse(u), nil
}

// DeleteUser 拒绝删除仍有署名帖子的用户（见 DESIGN.md）
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return NotFoundf("user not found with ID: %d", id)
	}
	if n, err := s.posts.CountByAuthor(ctx, id); err != nil {
		return err
	} else if n > 0 {
		return Conflictf("user %d still has %d authored posts", id, n)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.Uint("id", id))
	return nil
}
