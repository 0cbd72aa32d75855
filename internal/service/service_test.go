package service

import (
	"buriti_backend/internal/config"
	"buriti_backend/internal/model"
	"buriti_backend/internal/repository"
	"buriti_backend/internal/util"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Module{},
		&model.Lesson{},
		&model.Video{},
		&model.LiveSession{},
		&model.Quiz{},
		&model.QuizResponse{},
		&model.Upload{},
		&model.Forum{},
		&model.ForumMessage{},
		&model.Enrollment{},
		&model.ProgressRecord{},
		&model.Task{},
		&model.TaskResponse{},
		&model.Test{},
		&model.Grade{},
		&model.News{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// testEnv wires the full service graph over one in-memory database.
type testEnv struct {
	db          *gorm.DB
	storage     *StorageService
	catalog     *CatalogService
	content     *ContentService
	enrollment  *EnrollmentService
	progress    *ProgressService
	certificate *CertificateService
	forum       *ForumService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	storage := &StorageService{Provider: &LocalStorageProvider{
		Config: &config.StorageConfig{LocalPath: t.TempDir()},
	}}

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	contentRepo := repository.NewContentRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	forumRepo := repository.NewForumRepository(db)
	sequencer := repository.NewSequencer(db)

	enrollment := NewEnrollmentService(enrollmentRepo, courseRepo, userRepo, db)

	return &testEnv{
		db:          db,
		storage:     storage,
		catalog:     NewCatalogService(courseRepo, moduleRepo, contentRepo, sequencer, storage, db),
		content:     NewContentService(contentRepo, moduleRepo, sequencer, storage, enrollment, nil, db),
		enrollment:  enrollment,
		progress:    NewProgressService(progressRepo, moduleRepo, enrollmentRepo),
		certificate: NewCertificateService(progressRepo, courseRepo),
		forum:       NewForumService(forumRepo, moduleRepo, enrollmentRepo, enrollment, sequencer, db),
	}
}

func (e *testEnv) seedUser(t *testing.T, email string, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{Name: "Maria Silva", Email: email, Password: "x", Role: role}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) seedCourse(t *testing.T, title string) *model.Course {
	t.Helper()
	course := &model.Course{Title: title, Description: "desc", Duration: "40h"}
	require.NoError(t, e.db.Create(course).Error)
	return course
}

func (e *testEnv) seedModule(t *testing.T, courseID uint, title string, ordem int) *model.Module {
	t.Helper()
	module := &model.Module{CourseID: courseID, Title: title, Ordem: ordem}
	require.NoError(t, e.db.Create(module).Error)
	return module
}

func (e *testEnv) seedLesson(t *testing.T, moduleID uint, title string, ordem int) *model.Lesson {
	t.Helper()
	lesson := &model.Lesson{ModuleID: moduleID, Title: title, Ordem: ordem}
	require.NoError(t, e.db.Create(lesson).Error)
	return lesson
}

func (e *testEnv) enroll(t *testing.T, userID, courseID uint, status model.EnrollmentStatus) *model.Enrollment {
	t.Helper()
	enrollment := &model.Enrollment{UserID: userID, CourseID: courseID, Status: status}
	require.NoError(t, e.db.Create(enrollment).Error)
	return enrollment
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var appErr *util.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, status, appErr.Status)
}
