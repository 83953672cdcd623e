package repositories

import (
	"errors"

	"aitech_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBlogNotFound = errors.New("blog not found")

// ContentRepository - чтение справочного контента сайта
// (services, blogs, reviews). Путей мутации через API нет.
type ContentRepository interface {
	FindAllServices() ([]models.Service, error)
	FindAllBlogs() ([]models.Blog, error)
	FindBlogByID(id string) (*models.Blog, error)
	FindAllReviews() ([]models.Review, error)
}

type ContentRepositoryImpl struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &ContentRepositoryImpl{db: db}
}

func (r *ContentRepositoryImpl) FindAllServices() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Order("created_at").Find(&services).Error
	return services, err
}

func (r *ContentRepositoryImpl) FindAllBlogs() ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.Order("created_at desc").Find(&blogs).Error
	return blogs, err
}

func (r *ContentRepositoryImpl) FindBlogByID(id string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

func (r *ContentRepositoryImpl) FindAllReviews() ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Order("created_at desc").Find(&reviews).Error
	return reviews, err
}
