package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"tasklist/internal/adapter/http/middleware"
	"tasklist/internal/auth"
	"tasklist/pkg/translator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "../../../../pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	os.Exit(m.Run())
}

func newAuthRouter(tokens *auth.TokenManager) *gin.Engine {
	router := gin.New()
	router.GET("/protected", middleware.LanguageMiddleware(), middleware.AuthMiddleware(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"owner": middleware.GetOwnerID(c)})
	})
	return router
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour, "tasklist-test")
	token, err := tokens.Generate("user-1", "alex@example.com")
	require.NoError(t, err)

	router := newAuthRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "user-1")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour, "tasklist-test")
	router := newAuthRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour, "tasklist-test")
	router := newAuthRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("other-secret", time.Hour, "tasklist-test")
	token, err := issuer.Generate("user-1", "alex@example.com")
	require.NoError(t, err)

	tokens := auth.NewTokenManager("secret", time.Hour, "tasklist-test")
	router := newAuthRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
