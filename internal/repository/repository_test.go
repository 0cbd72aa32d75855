package repository

import (
	"buriti_backend/internal/model"
	"testing"

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

func seedCourse(t *testing.T, db *gorm.DB) *model.Course {
	t.Helper()
	course := &model.Course{Title: "Informática Básica", Description: "desc", Duration: "40h"}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return course
}

func seedModule(t *testing.T, db *gorm.DB, courseID uint, title string, ordem int) *model.Module {
	t.Helper()
	module := &model.Module{CourseID: courseID, Title: title, Ordem: ordem}
	if err := db.Create(module).Error; err != nil {
		t.Fatalf("seed module: %v", err)
	}
	return module
}

func seedUser(t *testing.T, db *gorm.DB, email string, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{Name: "Aluno Teste", Email: email, Password: "x", Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}
