package database

import (
	"buriti_backend/internal/config"
	"buriti_backend/internal/model"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
}

// SeedAdmin creates the first admin account when the users table is empty.
// There is no self-registration; every other account is created by an admin.
func SeedAdmin(db *gorm.DB, cfg *config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:     "Administrador",
		Email:    cfg.Email,
		Password: string(hash),
		Role:     model.Admin,
	}
	return db.Create(admin).Error
}
