package services

import (
	"aitech_backend/internal/models"
	"aitech_backend/internal/repositories"
	"aitech_backend/pkg/apperrors"
)

// ContentService - публичные чтения контента сайта
type ContentService interface {
	ListServices() ([]models.Service, error)
	ListBlogs() ([]models.Blog, error)
	// GetBlog возвращает (nil, nil) для отсутствующего документа:
	// клиент получает null, а не 404
	GetBlog(id string) (*models.Blog, error)
	ListReviews() ([]models.Review, error)
}

type ContentServiceImpl struct {
	contentRepo repositories.ContentRepository
}

func NewContentService(contentRepo repositories.ContentRepository) ContentService {
	return &ContentServiceImpl{contentRepo: contentRepo}
}

func (s *ContentServiceImpl) ListServices() ([]models.Service, error) {
	services, err := s.contentRepo.FindAllServices()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return services, nil
}

func (s *ContentServiceImpl) ListBlogs() ([]models.Blog, error) {
	blogs, err := s.contentRepo.FindAllBlogs()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return blogs, nil
}

func (s *ContentServiceImpl) GetBlog(id string) (*models.Blog, error) {
	blog, err := s.contentRepo.FindBlogByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBlogNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return blog, nil
}

func (s *ContentServiceImpl) ListReviews() ([]models.Review, error) {
	reviews, err := s.contentRepo.FindAllReviews()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reviews, nil
}
