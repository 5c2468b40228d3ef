package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/adapter/http/handlers"
	"tasklist/internal/adapter/http/middleware"
	"tasklist/internal/core/domain"
	"tasklist/pkg/apierrors"
	"tasklist/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, string, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *userServiceMock) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *userServiceMock) Profile(ctx context.Context, userID string) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func newUserRouter(handler *handlers.UserHandler) *gin.Engine {
	router := gin.New()
	group := router.Group("/api/users", middleware.LanguageMiddleware())
	group.POST("/register", handler.Register)
	group.POST("/login", handler.Login)
	group.GET("/me", fakeOwner("user-1"), handler.Me)
	return router
}

func TestUserHandler_Register_Success(t *testing.T) {
	createdAt := time.Date(2026, 3, 13, 10, 20, 30, 0, time.UTC)

	serviceMock := new(userServiceMock)
	serviceMock.On("Register", mock.Anything, domain.RegisterUserInput{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "hunter22",
	}).Return(
		domain.User{ID: "user-1", Username: "alex", Email: "alex@example.com", CreatedAt: createdAt},
		"signed-token",
		nil,
	).Once()
	handler := handlers.NewUserHandler(serviceMock)

	router := newUserRouter(handler)

	body := `{"username":"alex","email":"alex@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "signed-token", got.Token)
	require.Equal(t, "user-1", got.User.ID)
	require.Equal(t, "alex", got.User.Username)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_Register_EmailTaken(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("Register", mock.Anything, mock.Anything).
		Return(domain.User{}, "", domain.ErrEmailTaken).Once()
	handler := handlers.NewUserHandler(serviceMock)

	router := newUserRouter(handler)

	body := `{"username":"alex","email":"alex@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "email is already registered", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_Register_InvalidPayload(t *testing.T) {
	serviceMock := new(userServiceMock)
	handler := handlers.NewUserHandler(serviceMock)

	router := newUserRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("Login", mock.Anything, "alex@example.com", "wrong").
		Return(domain.User{}, "", domain.ErrInvalidCredentials).Once()
	handler := handlers.NewUserHandler(serviceMock)

	router := newUserRouter(handler)

	body := `{"email":"alex@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "invalid email or password", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_Me_Success(t *testing.T) {
	createdAt := time.Date(2026, 3, 13, 10, 20, 30, 0, time.UTC)

	serviceMock := new(userServiceMock)
	serviceMock.On("Profile", mock.Anything, "user-1").Return(
		domain.User{ID: "user-1", Username: "alex", Email: "alex@example.com", CreatedAt: createdAt},
		nil,
	).Once()
	handler := handlers.NewUserHandler(serviceMock)

	router := newUserRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.UserItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "alex", got.Username)
	serviceMock.AssertExpectations(t)
}
