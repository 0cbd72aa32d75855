package middleware

import (
	"buriti_backend/internal/config"
	"buriti_backend/internal/model"
	"buriti_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func newAuthRouter(cfg *config.Config, roles ...model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware(cfg)}
	if len(roles) > 0 {
		handlers = append(handlers, RoleMiddleware(roles...))
	}
	group := router.Group("/", handlers...)
	group.GET("/protected", func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	return router
}

func tokenFor(t *testing.T, user *model.User) string {
	t.Helper()
	token, err := util.GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	router := newAuthRouter(testConfig())
	w := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	router := newAuthRouter(testConfig())
	w := doRequest(router, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	router := newAuthRouter(testConfig())
	w := doRequest(router, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	router := newAuthRouter(testConfig())
	user := &model.User{Name: "Maria", Email: "m@example.com", Role: model.Student}
	user.ID = 7

	token, err := util.GenerateJWT(user, "another-secret", time.Hour)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewarePassesClaims(t *testing.T) {
	router := newAuthRouter(testConfig())
	user := &model.User{Name: "Maria", Email: "m@example.com", Role: model.Student}
	user.ID = 7

	w := doRequest(router, "Bearer "+tokenFor(t, user))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
}

func TestRoleMiddlewareEnforcesRole(t *testing.T) {
	router := newAuthRouter(testConfig(), model.Admin)

	student := &model.User{Name: "Maria", Email: "m@example.com", Role: model.Student}
	student.ID = 7
	w := doRequest(router, "Bearer "+tokenFor(t, student))
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := &model.User{Name: "Admin", Email: "a@example.com", Role: model.Admin}
	admin.ID = 1
	w = doRequest(router, "Bearer "+tokenFor(t, admin))
	assert.Equal(t, http.StatusOK, w.Code)
}
