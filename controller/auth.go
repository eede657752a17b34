package controller

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"serene-backend/config"
	"serene-backend/middleware"
	"serene-backend/model"
	"serene-backend/request"
	"serene-backend/response"
	"serene-backend/service/auth"

	"github.com/gin-gonic/gin"
)

func UserRegister(c *gin.Context) {
	var req request.UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	user, err := auth.UserRegister(req)
	if err != nil {
		slog.Error(ErrUserRegister.Error(), "email", req.Email, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrUserRegister.Error(),
		})
		return
	}

	token, err := middleware.GenerateToken(user.Email, model.RoleUser)
	if err != nil {
		slog.Error(ErrGenerateToken.Error(), "email", user.Email, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGenerateToken.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response.Response{
		Data: response.UserAuthResponse{
			Email:  user.Email,
			Name:   user.Name,
			Avatar: user.Avatar,
			Token:  token,
		},
	})
}

func UserLogin(c *gin.Context) {
	var req request.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	user, err := auth.UserLogin(req)
	if err != nil {
		slog.Error(ErrUserLogin.Error(),
			"email", req.Email,
			"err", err,
		)
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{
			Msg: ErrUserLogin.Error(),
		})
		return
	}

	token, err := middleware.GenerateToken(user.Email, model.RoleUser)
	if err != nil {
		slog.Error(ErrGenerateToken.Error(),
			"email", user.Email,
			"err", err,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGenerateToken.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{
		Data: response.UserAuthResponse{
			Email:  user.Email,
			Name:   user.Name,
			Avatar: user.Avatar,
			Token:  token,
		},
	})
}

// CounselorLogin 复核员使用访问码登录，签发带复核员角色的令牌
func CounselorLogin(c *gin.Context) {
	var req request.CounselorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Response{
			Msg: ErrParseRequest.Error(),
		})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.AccessCode), []byte(config.Cfg.Counselor.AccessCode)) != 1 {
		slog.Info(ErrAccessCode.Error(), "email", req.Email)
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{
			Msg: ErrAccessCode.Error(),
		})
		return
	}

	token, err := middleware.GenerateToken(req.Email, model.RoleCounselor)
	if err != nil {
		slog.Error(ErrGenerateToken.Error(), "email", req.Email, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
			Msg: ErrGenerateToken.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.Response{
		Data: response.CounselorAuthResponse{
			Email: req.Email,
			Token: token,
		},
	})
}
