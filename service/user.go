package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"network/dao"
	"network/models"
	"network/pkg/encrypt"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, opt *UserRegisterOpt) (*models.User, error)
	Login(ctx context.Context, username string, password string) (*models.User, error)
}

type UserService struct {
	UsersRepo *dao.Users
}

type UserRegisterOpt struct {
	Username     string
	Email        string
	Password     string
	Confirmation string
}

// Register 注册用户，用户名为空、两次密码不一致或用户名已存在时不写入
func (s *UserService) Register(ctx context.Context, opt *UserRegisterOpt) (*models.User, error) {
	username := strings.TrimSpace(opt.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if opt.Password != opt.Confirmation {
		return nil, ErrPasswordMismatch
	}

	exist, err := s.UsersRepo.IsUsernameExist(ctx, username)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, ErrUsernameTaken
	}

	hash, err := encrypt.HashPassword(opt.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    strings.TrimSpace(opt.Email),
		Password: hash,
	}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// Login 校验用户名密码
func (s *UserService) Login(ctx context.Context, username string, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.UsersRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
