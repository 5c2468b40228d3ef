package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/adapter/http/mapper"
	"tasklist/internal/adapter/http/middleware"
	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
	"tasklist/pkg/apierrors"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	user, token, err := h.userService.Register(c.Request.Context(), domain.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgEmailTaken, lang),
			)
		case errors.Is(err, domain.ErrPasswordTooShort):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgPasswordTooShort, lang),
			)
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
			)
		default:
			zap.L().Error("failed to register user", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailRegisterUser, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  mapper.ToUserItem(user),
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to log in user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLoginUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  mapper.ToUserItem(user),
	})
}

func (h *UserHandler) Me(c *gin.Context) {
	lang := middleware.GetLang(c)

	user, err := h.userService.Profile(c.Request.Context(), middleware.GetOwnerID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to load profile", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLoginUser, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}
