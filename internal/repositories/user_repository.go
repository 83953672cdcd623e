package repositories

import (
	"errors"

	"aitech_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	// UpdateRole/UpdateFired/UpdateVerified возвращают число затронутых
	// строк - оно уходит клиенту как matchedCount/modifiedCount
	UpdateRole(userID string, role models.UserRole) (int64, error)
	UpdateFired(userID string, fired bool) (int64, error)
	UpdateVerified(userID string, verified bool) (int64, error)
	FindByRole(role models.UserRole) ([]models.User, error)
	FindHRAndVerifiedEmployees() ([]models.User, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	// Check if user already exists
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) UpdateRole(userID string, role models.UserRole) (int64, error) {
	res := r.db.Model(&models.User{}).Where("id = ?", userID).Update("role", role)
	return res.RowsAffected, res.Error
}

func (r *UserRepositoryImpl) UpdateFired(userID string, fired bool) (int64, error) {
	res := r.db.Model(&models.User{}).Where("id = ?", userID).Update("is_fired", fired)
	return res.RowsAffected, res.Error
}

func (r *UserRepositoryImpl) UpdateVerified(userID string, verified bool) (int64, error) {
	res := r.db.Model(&models.User{}).Where("id = ?", userID).Update("is_verified", verified)
	return res.RowsAffected, res.Error
}

func (r *UserRepositoryImpl) FindByRole(role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).Order("created_at").Find(&users).Error
	return users, err
}

// FindHRAndVerifiedEmployees возвращает ростер для админа:
// все HR плюс верифицированные сотрудники
func (r *UserRepositoryImpl) FindHRAndVerifiedEmployees() ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("role = ?", models.UserRoleHR).
		Or("role = ? AND is_verified = ?", models.UserRoleEmployee, true).
		Order("created_at").
		Find(&users).Error
	return users, err
}
