package controller

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/repository"
	"buriti_backend/internal/service"
	"buriti_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newProgressRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Course{}, &model.Module{}, &model.Lesson{},
		&model.Enrollment{}, &model.ProgressRecord{},
	))

	ctrl := NewProgressController(service.NewProgressService(
		repository.NewProgressRepository(db),
		repository.NewModuleRepository(db),
		repository.NewEnrollmentRepository(db),
	))

	router := gin.New()
	// the auth middleware normally populates the claims; injected here
	asUser := func(claims *util.Claims) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user", claims)
		}
	}
	student := &util.Claims{UserID: 7, Role: model.Student, Name: "Maria"}
	admin := &util.Claims{UserID: 1, Role: model.Admin, Name: "Admin"}

	router.GET("/self/progress/:userId", asUser(student), ctrl.Get)
	router.GET("/admin/progress/:userId", asUser(admin), ctrl.Get)
	router.POST("/self/progress", asUser(student), ctrl.SetWatched)
	return router, db
}

func TestProgressReadIsSelfOrAdmin(t *testing.T) {
	router, _ := newProgressRouter(t)

	// own records
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/self/progress/7", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// someone else's records
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/self/progress/8", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// admin reads anyone
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/progress/7", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProgressWriteTargetsCallerOnly(t *testing.T) {
	router, db := newProgressRouter(t)

	course := &model.Course{Title: "Curso", Description: "d", Duration: "40h"}
	require.NoError(t, db.Create(course).Error)
	module := &model.Module{CourseID: course.ID, Title: "Módulo 1", Ordem: 1}
	require.NoError(t, db.Create(module).Error)
	lesson := &model.Lesson{ModuleID: module.ID, Title: "Aula 1", Ordem: 1}
	require.NoError(t, db.Create(lesson).Error)

	body := `{"cursoId":1,"moduloId":1,"aulaId":1,"assistida":true}`
	req := httptest.NewRequest(http.MethodPost, "/self/progress", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// the row belongs to the token owner, regardless of anything in the body
	var record model.ProgressRecord
	require.NoError(t, db.First(&record).Error)
	assert.EqualValues(t, 7, record.UserID)
}

func TestProgressWriteValidatesBody(t *testing.T) {
	router, _ := newProgressRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/self/progress", strings.NewReader(`{"cursoId":1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
