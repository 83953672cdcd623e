package services

import (
	"aitech_backend/internal/auth"
	"aitech_backend/internal/models"
	"aitech_backend/internal/repositories"
	"aitech_backend/internal/services/dto"
	"aitech_backend/pkg/apperrors"
)

type UserService interface {
	IssueToken(email string) (string, error)
	RegisterUser(req *dto.RegisterRequest) (*dto.InsertResult, error)
	HasRole(email string, role models.UserRole) (bool, error)
	ListEmployeeHRRoster() ([]models.User, error)
	ListEmployees() ([]models.User, error)
	PromoteToHR(userID string) (*dto.UpdateResult, error)
	SetFired(userID string, fired bool) (*dto.UpdateResult, error)
	SetVerified(userID string, verified bool) (*dto.UpdateResult, error)
}

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
}

func NewUserService(userRepo repositories.UserRepository, jwtSecret string) UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// IssueToken - выдача access-токена по email. Payload доверяется как
// есть: токен несет только идентичность, роль проверяется на запросах.
func (s *UserServiceImpl) IssueToken(email string) (string, error) {
	token, err := auth.GenerateToken(email, s.jwtSecret)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return token, nil
}

// RegisterUser - саморегистрация. Повторная регистрация того же email
// не ошибка: возвращается insertedId=null с сообщением, как в исходном API.
func (s *UserServiceImpl) RegisterUser(req *dto.RegisterRequest) (*dto.InsertResult, error) {
	if !req.Role.Valid() {
		// Неизвестная роль с фронтенда сохраняется как "без роли",
		// назначение ролей - прерогатива админа
		req.Role = models.UserRoleUnassigned
	}

	user := &models.User{
		Email:         req.Email,
		Name:          req.Name,
		Role:          req.Role,
		Designation:   req.Designation,
		Salary:        req.Salary,
		BankAccountNo: req.BankAccountNo,
		PhotoURL:      req.PhotoURL,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return &dto.InsertResult{
				InsertedID: nil,
				Message:    "user already exists",
			}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	id := user.ID
	return &dto.InsertResult{InsertedID: &id}, nil
}

// HasRole проверяет текущую сохраненную роль аккаунта.
// Отсутствующий аккаунт - просто false, не ошибка.
func (s *UserServiceImpl) HasRole(email string, role models.UserRole) (bool, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return false, nil
		}
		return false, apperrors.InternalError(err)
	}
	return user.Role == role, nil
}

// ListEmployeeHRRoster - ростер для админа: HR плюс верифицированные сотрудники
func (s *UserServiceImpl) ListEmployeeHRRoster() ([]models.User, error) {
	users, err := s.userRepo.FindHRAndVerifiedEmployees()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

// ListEmployees - список сотрудников для HR
func (s *UserServiceImpl) ListEmployees() ([]models.User, error) {
	users, err := s.userRepo.FindByRole(models.UserRoleEmployee)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

// PromoteToHR безусловно ставит роль HR. Повторный вызов для уже-HR
// аккаунта дает тот же итог и тоже успешный результат.
func (s *UserServiceImpl) PromoteToHR(userID string) (*dto.UpdateResult, error) {
	affected, err := s.userRepo.UpdateRole(userID, models.UserRoleHR)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UpdateResult{MatchedCount: affected, ModifiedCount: affected}, nil
}

// SetFired переносит isFired из тела запроса в аккаунт как есть
func (s *UserServiceImpl) SetFired(userID string, fired bool) (*dto.UpdateResult, error) {
	affected, err := s.userRepo.UpdateFired(userID, fired)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UpdateResult{MatchedCount: affected, ModifiedCount: affected}, nil
}

// SetVerified переносит isVarified из тела запроса в аккаунт как есть
func (s *UserServiceImpl) SetVerified(userID string, verified bool) (*dto.UpdateResult, error) {
	affected, err := s.userRepo.UpdateVerified(userID, verified)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UpdateResult{MatchedCount: affected, ModifiedCount: affected}, nil
}
