package repository

import (
	"buriti_backend/internal/model"

	"gorm.io/gorm"
)

type ForumRepository struct {
	DB *gorm.DB
}

func NewForumRepository(db *gorm.DB) *ForumRepository {
	return &ForumRepository{DB: db}
}

func (r *ForumRepository) FindByID(id uint) (*model.Forum, error) {
	var forum model.Forum
	if err := r.DB.First(&forum, id).Error; err != nil {
		return nil, err
	}
	return &forum, nil
}

func (r *ForumRepository) Create(forum *model.Forum) error {
	return r.DB.Create(forum).Error
}

// ListByCourses returns the forums of the given courses, ordered per course.
func (r *ForumRepository) ListByCourses(courseIDs []uint) ([]model.Forum, error) {
	var forums []model.Forum
	if len(courseIDs) == 0 {
		return forums, nil
	}
	err := r.DB.Where("course_id IN ?", courseIDs).Order("course_id, ordem").Find(&forums).Error
	return forums, err
}

func (r *ForumRepository) CreateMessage(message *model.ForumMessage) error {
	return r.DB.Create(message).Error
}

func (r *ForumRepository) ListMessages(forumID uint) ([]model.ForumMessage, error) {
	var messages []model.ForumMessage
	err := r.DB.Where("forum_id = ?", forumID).Order("timestamp ASC").Find(&messages).Error
	return messages, err
}
