package repositories

import (
	"aitech_backend/internal/models"

	"gorm.io/gorm"
)

type WorkInfoRepository interface {
	Create(info *models.WorkInfo) error
	FindAll() ([]models.WorkInfo, error)
	FindByEmail(email string) ([]models.WorkInfo, error)
}

type WorkInfoRepositoryImpl struct {
	db *gorm.DB
}

func NewWorkInfoRepository(db *gorm.DB) WorkInfoRepository {
	return &WorkInfoRepositoryImpl{db: db}
}

func (r *WorkInfoRepositoryImpl) Create(info *models.WorkInfo) error {
	return r.db.Create(info).Error
}

func (r *WorkInfoRepositoryImpl) FindAll() ([]models.WorkInfo, error) {
	var infos []models.WorkInfo
	err := r.db.Order("created_at desc").Find(&infos).Error
	return infos, err
}

func (r *WorkInfoRepositoryImpl) FindByEmail(email string) ([]models.WorkInfo, error) {
	var infos []models.WorkInfo
	err := r.db.Where("email = ?", email).Order("created_at desc").Find(&infos).Error
	return infos, err
}
