package dto

// WorkInfoRequest - тело POST /employee-work-info. Схемной валидации
// нет: сотрудник может отправлять записи в любом объеме.
type WorkInfoRequest struct {
	Email        string  `json:"email" validate:"required"`
	Task         string  `json:"task"`
	HoursWorked  float64 `json:"hoursWorked"`
	Month        string  `json:"month"`
	EmployeeName string  `json:"employeeName"`
}
