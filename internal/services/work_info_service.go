package services

import (
	"aitech_backend/internal/models"
	"aitech_backend/internal/repositories"
	"aitech_backend/internal/services/dto"
	"aitech_backend/pkg/apperrors"
)

type WorkInfoService interface {
	Submit(req *dto.WorkInfoRequest) (*dto.InsertResult, error)
	ListAll() ([]models.WorkInfo, error)
	ListByEmail(email string) ([]models.WorkInfo, error)
}

type WorkInfoServiceImpl struct {
	workInfoRepo repositories.WorkInfoRepository
}

func NewWorkInfoService(workInfoRepo repositories.WorkInfoRepository) WorkInfoService {
	return &WorkInfoServiceImpl{workInfoRepo: workInfoRepo}
}

// Submit - вставка записи о работе. Без дедупликации и ограничений
// по объему, как в исходном API.
func (s *WorkInfoServiceImpl) Submit(req *dto.WorkInfoRequest) (*dto.InsertResult, error) {
	info := &models.WorkInfo{
		Email:        req.Email,
		Task:         req.Task,
		HoursWorked:  req.HoursWorked,
		Month:        req.Month,
		EmployeeName: req.EmployeeName,
	}

	if err := s.workInfoRepo.Create(info); err != nil {
		return nil, apperrors.InternalError(err)
	}

	id := info.ID
	return &dto.InsertResult{InsertedID: &id}, nil
}

func (s *WorkInfoServiceImpl) ListAll() ([]models.WorkInfo, error) {
	infos, err := s.workInfoRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return infos, nil
}

func (s *WorkInfoServiceImpl) ListByEmail(email string) ([]models.WorkInfo, error) {
	infos, err := s.workInfoRepo.FindByEmail(email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return infos, nil
}
