package service

import (
	"buriti_backend/internal/model"
	"buriti_backend/internal/repository"
	"buriti_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type NewsService struct {
	NewsRepo *repository.NewsRepository
}

func NewNewsService(newsRepo *repository.NewsRepository) *NewsService {
	return &NewsService{NewsRepo: newsRepo}
}

func (s *NewsService) List() ([]model.News, error) {
	return s.NewsRepo.FindAll()
}

func (s *NewsService) Create(news *model.News) error {
	if news.Title == "" || news.Content == "" || news.Category == "" {
		return util.ValidationErr("title, content and category are required")
	}
	return s.NewsRepo.Create(news)
}

type NewsUpdate struct {
	Title    *string
	Content  *string
	Category *string
	Link     *string
	Status   *string
}

func (s *NewsService) Update(id uint, update NewsUpdate) (*model.News, error) {
	news, err := s.NewsRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundErr("news item not found")
		}
		return nil, err
	}

	if update.Title != nil {
		news.Title = *update.Title
	}
	if update.Content != nil {
		news.Content = *update.Content
	}
	if update.Category != nil {
		news.Category = *update.Category
	}
	if update.Link != nil {
		news.Link = *update.Link
	}
	if update.Status != nil {
		news.Status = *update.Status
	}

	if news.Title == "" || news.Content == "" || news.Category == "" {
		return nil, util.ValidationErr("title, content and category cannot be empty")
	}
	if err := s.NewsRepo.Update(news); err != nil {
		return nil, err
	}
	return news, nil
}

func (s *NewsService) Delete(id uint) error {
	err := s.NewsRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.NotFoundErr("news item not found")
	}
	return err
}
