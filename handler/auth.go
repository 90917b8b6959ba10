package handler

import (
	"errors"
	"fmt"
	"net/http"

	"network/config"
	"network/middleware"
	"network/models"
	"network/pkg/context"
	"network/pkg/response"
	"network/service"
	"network/types"

	"github.com/gin-gonic/gin"
)

const (
	MsgInvalidCredentials = "Invalid username and/or password."
	MsgPasswordMismatch   = "Passwords must match."
	MsgUsernameTaken      = "Username already taken."
	MsgUsernameRequired   = "Username is required."
)

type Auth struct {
	Config       *config.Config
	UserService  service.IUserService
	TokenService service.ITokenService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	r.POST("/login", context.Wrap(u.Login))
	r.POST("/logout", middleware.OptionalAuth(u.TokenService), context.Wrap(u.Logout))
	r.POST("/register", context.Wrap(u.Register))
}

// Login 登录，失败时返回提示信息
func (u *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Message(c, http.StatusBadRequest, MsgInvalidCredentials, nil)
		return nil
	}

	user, err := u.UserService.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		response.Message(c, http.StatusUnauthorized, MsgInvalidCredentials, nil)
		return nil
	}
	if err != nil {
		return err
	}

	return u.startSession(c, http.StatusOK, "Logged in.", user)
}

// Register 注册并直接登录
func (u *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Username and password are required.", nil)
		return nil
	}

	user, err := u.UserService.Register(c.Request.Context(), &service.UserRegisterOpt{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		Confirmation: req.Confirmation,
	})
	switch {
	case errors.Is(err, service.ErrUsernameRequired):
		response.Message(c, http.StatusBadRequest, MsgUsernameRequired, nil)
		return nil
	case errors.Is(err, service.ErrPasswordMismatch):
		response.Message(c, http.StatusBadRequest, MsgPasswordMismatch, nil)
		return nil
	case errors.Is(err, service.ErrUsernameTaken):
		response.Message(c, http.StatusConflict, MsgUsernameTaken, nil)
		return nil
	case err != nil:
		return err
	}

	return u.startSession(c, http.StatusCreated, "Registered.", user)
}

// Logout 注销当前 token 并清除 cookie，注销失败时返回 500
func (u *Auth) Logout(c *gin.Context) error {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	if claims, ok := context.GetClaims(c); ok {
		if err := u.TokenService.Revoke(c.Request.Context(), claims); err != nil {
			return fmt.Errorf("revoke token of user %d: %w", claims.UserID, err)
		}
	}
	response.Redirect(c, "/")
	return nil
}

func (u *Auth) startSession(c *gin.Context, status int, msg string, user *models.User) error {
	token, claims, err := u.TokenService.Issue(user)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, int(u.Config.Jwt.ExpiresTime), "/", "", !u.Config.Debug(), true)

	var expiresAt int64
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Unix()
	}
	response.Message(c, status, msg, types.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserInfo(user),
	})
	return nil
}
